package consts

// UpsellPriceIDs maps the upsell options the storefront may attach to a
// checkout intent onto their gateway prices. Options not listed here are
// skipped when assembling the line items.
var UpsellPriceIDs = map[string]string{
	"4k-resolution":    "price_upsell_4k_resolution",
	"extended-license": "price_upsell_extended_license",
	"rush-delivery":    "price_upsell_rush_delivery",
}

// AdditionalFormatPriceID is the gateway price charged once per requested
// additional export format.
const AdditionalFormatPriceID = "price_additional_format"
