package element

// Element names used by CatalogPromotionElement
const (
	CrossedOutPriceElement = "crossed_out_price"
	NewPriceElement        = "new_price"
)

// DefaultCatalogPromotionDefinitions locate the prices of a product page
func DefaultCatalogPromotionDefinitions() Definitions {
	return Definitions{
		CrossedOutPriceElement: CSS("#product-price .old-price"),
		NewPriceElement:        CSS("#product-price .new-price"),
	}
}

// CatalogPromotionElement reads promotion prices from a product page
type CatalogPromotionElement struct {
	*Element
}

// NewCatalogPromotionElement creates the element. Missing definitions
// fall back to DefaultCatalogPromotionDefinitions.
func NewCatalogPromotionElement(session Session, definitions Definitions) *CatalogPromotionElement {
	merged := DefaultCatalogPromotionDefinitions()
	for name, selector := range definitions {
		merged[name] = selector
	}
	return &CatalogPromotionElement{Element: New(session, merged, nil)}
}

// CrossedOutPrice returns the original price shown struck through
func (e *CatalogPromotionElement) CrossedOutPrice() (string, error) {
	return e.Text(CrossedOutPriceElement, nil)
}

// NewPrice returns the promotional price
func (e *CatalogPromotionElement) NewPrice() (string, error) {
	return e.Text(NewPriceElement, nil)
}
