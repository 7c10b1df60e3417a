package service

import (
	"context"
	"fmt"
	"regexp"
	"time"

	"github.com/clipcraft/fulfillment/common"
	"github.com/clipcraft/fulfillment/downloads/dal"
	"github.com/clipcraft/fulfillment/framework/connection"
	"github.com/clipcraft/fulfillment/logger"
)

const (
	urlTTLEnvVar  = "DOWNLOAD_URL_TTL"
	defaultURLTTL = 15 * time.Minute
)

// ownedPathPattern is the only servable path shape: a file under a user's
// order prefix. Everything else is denied, including staged paths and bare
// prefixes.
var ownedPathPattern = regexp.MustCompile(`^orders/([^/]+)/[^/]+/.+$`)

type AccessGatewayService struct {
	loggerProvider logger.Provider
	signer         dal.URLSigner
	urlTTL         time.Duration
}

func NewAccessGatewayService(loggerProvider logger.Provider, conn *connection.Connection) *AccessGatewayService {
	return &AccessGatewayService{
		loggerProvider,
		dal.NewSignerGCS(conn.CloudStorage(context.Background()).Bucket(common.AssetsBucket)),
		urlTTLFromEnv(),
	}
}

func urlTTLFromEnv() time.Duration {
	raw := common.GetEnv(urlTTLEnvVar, "")
	if raw == "" {
		return defaultURLTTL
	}

	ttl, err := time.ParseDuration(raw)
	if err != nil || ttl <= 0 {
		return defaultURLTTL
	}

	return ttl
}

// IssueDownloadURL returns a time-boxed read-only URL for the exact object at
// filePath. Checks run in order: caller authenticated, path non-empty, path
// owned by the caller. Paths outside the recognized order prefix shape are
// denied.
func (s *AccessGatewayService) IssueDownloadURL(ctx context.Context, uid, filePath string) (string, error) {
	if uid == "" {
		return "", ErrUnauthenticated
	}

	if filePath == "" {
		return "", ErrInvalidFilePath
	}

	match := ownedPathPattern.FindStringSubmatch(filePath)
	if match == nil || match[1] != uid {
		s.loggerProvider(ctx).Warningf("downloads: denying %s access to %s", uid, filePath)
		return "", ErrPathNotPermitted
	}

	url, err := s.signer.SignURL(ctx, filePath, time.Now().Add(s.urlTTL))
	if err != nil {
		return "", fmt.Errorf("%w: %s", ErrSigning, err)
	}

	return url, nil
}
