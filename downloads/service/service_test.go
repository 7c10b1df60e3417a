package service

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/clipcraft/fulfillment/downloads/dal/mocks"
	"github.com/clipcraft/fulfillment/logger"
)

func TestAccessGatewayService_IssueDownloadURL(t *testing.T) {
	ctx := context.Background()

	type fields struct {
		signer *mocks.URLSigner
	}

	type args struct {
		uid      string
		filePath string
	}

	tests := []struct {
		name    string
		args    args
		want    string
		wantErr error
		on      func(f *fields)
	}{
		{
			name:    "unauthenticated caller rejected before any other check",
			args:    args{uid: "", filePath: "orders/alice/ORD-1/x.mp4"},
			wantErr: ErrUnauthenticated,
		},
		{
			name:    "empty path rejected before any storage call",
			args:    args{uid: "alice", filePath: ""},
			wantErr: ErrInvalidFilePath,
		},
		{
			name: "owner may download their order file",
			args: args{uid: "alice", filePath: "orders/alice/ORD-1/x.mp4"},
			want: "https://signed.example.com/x.mp4",
			on: func(f *fields) {
				f.signer.On("SignURL", ctx, "orders/alice/ORD-1/x.mp4", mock.AnythingOfType("time.Time")).
					Return("https://signed.example.com/x.mp4", nil)
			},
		},
		{
			name:    "another user's order file is forbidden",
			args:    args{uid: "bob", filePath: "orders/alice/ORD-1/x.mp4"},
			wantErr: ErrPathNotPermitted,
		},
		{
			name:    "paths outside the order prefix are denied by default",
			args:    args{uid: "alice", filePath: "temp/alice/x.mp4"},
			wantErr: ErrPathNotPermitted,
		},
		{
			name:    "bare order prefix without a file is denied",
			args:    args{uid: "alice", filePath: "orders/alice/ORD-1"},
			wantErr: ErrPathNotPermitted,
		},
		{
			name:    "traversal-looking path is denied",
			args:    args{uid: "alice", filePath: "orders/../orders/alice/ORD-1/x.mp4"},
			wantErr: ErrPathNotPermitted,
		},
		{
			name:    "storage failure surfaces as signing error",
			args:    args{uid: "alice", filePath: "orders/alice/ORD-1/x.mp4"},
			wantErr: ErrSigning,
			on: func(f *fields) {
				f.signer.On("SignURL", ctx, "orders/alice/ORD-1/x.mp4", mock.AnythingOfType("time.Time")).
					Return("", errors.New("backend unavailable"))
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := fields{
				signer: mocks.NewURLSigner(t),
			}

			if tt.on != nil {
				tt.on(&f)
			}

			s := &AccessGatewayService{
				loggerProvider: logger.FromContext,
				signer:         f.signer,
				urlTTL:         defaultURLTTL,
			}

			got, err := s.IssueDownloadURL(ctx, tt.args.uid, tt.args.filePath)

			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
				return
			}

			assert.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestAccessGatewayService_urlTTLHonored(t *testing.T) {
	ctx := context.Background()
	ttl := 42 * time.Minute

	signer := mocks.NewURLSigner(t)

	var expires time.Time

	signer.On("SignURL", ctx, "orders/alice/ORD-1/x.mp4", mock.AnythingOfType("time.Time")).
		Run(func(args mock.Arguments) {
			expires = args.Get(2).(time.Time)
		}).
		Return("https://signed.example.com/x.mp4", nil)

	s := &AccessGatewayService{
		loggerProvider: logger.FromContext,
		signer:         signer,
		urlTTL:         ttl,
	}

	before := time.Now()
	_, err := s.IssueDownloadURL(ctx, "alice", "orders/alice/ORD-1/x.mp4")
	after := time.Now()

	require.NoError(t, err)
	assert.False(t, expires.Before(before.Add(ttl)))
	assert.False(t, expires.After(after.Add(ttl)))
}

func TestUrlTTLFromEnv(t *testing.T) {
	t.Run("default when unset", func(t *testing.T) {
		assert.Equal(t, defaultURLTTL, urlTTLFromEnv())
	})

	t.Run("configured duration", func(t *testing.T) {
		t.Setenv(urlTTLEnvVar, "5m")

		assert.Equal(t, 5*time.Minute, urlTTLFromEnv())
	})

	t.Run("invalid duration falls back to default", func(t *testing.T) {
		t.Setenv(urlTTLEnvVar, "soon")

		assert.Equal(t, defaultURLTTL, urlTTLFromEnv())
	})
}
