package catalog

import (
	"fmt"
	"regexp"
	"strings"

	"github.com/dmitrymomot/arshowroom/pkg/arlaunch"
	"github.com/dmitrymomot/arshowroom/pkg/slug"
)

// Spec is one labelled row of the specifications table.
type Spec struct {
	Label string `json:"label" bson:"label" yaml:"label"`
	Value string `json:"value" bson:"value" yaml:"value"`
}

// Color is a selectable finish swatch.
type Color struct {
	Name string `json:"name" bson:"name" yaml:"name"`
	Hex  string `json:"hex" bson:"hex" yaml:"hex"`
}

// Product is the display data of one catalogue item.
type Product struct {
	Slug           string         `json:"slug" bson:"slug" yaml:"slug"`
	Name           string         `json:"name" bson:"name" yaml:"name"`
	Description    string         `json:"description" bson:"description" yaml:"description"`
	Category       string         `json:"category,omitempty" bson:"category,omitempty" yaml:"category"`
	Poster         string         `json:"poster,omitempty" bson:"poster,omitempty" yaml:"poster"`
	Features       []string       `json:"features" bson:"features" yaml:"features"`
	Specifications []Spec         `json:"specifications" bson:"specifications" yaml:"specifications"`
	Colors         []Color        `json:"colors" bson:"colors" yaml:"colors"`
	Asset          arlaunch.Asset `json:"asset" bson:"asset" yaml:"asset"`
}

var (
	slugPattern = regexp.MustCompile(`^[a-z0-9]+(?:-[a-z0-9]+)*$`)
	hexPattern  = regexp.MustCompile(`^#(?:[0-9a-fA-F]{3}|[0-9a-fA-F]{6})$`)
)

// ValidSlug reports whether s is a lowercase, hyphen-separated slug.
func ValidSlug(s string) bool {
	return slugPattern.MatchString(s)
}

// Normalize fills derived fields: the slug from the name and the asset
// display name from the product name.
func (p Product) Normalize() Product {
	p.Name = strings.TrimSpace(p.Name)
	if p.Slug == "" {
		p.Slug = slug.Make(p.Name)
	}
	if p.Asset.Name == "" {
		p.Asset.Name = p.Name
	}
	return p
}

// Validate checks the product is renderable.
func (p Product) Validate() error {
	if p.Name == "" {
		return fmt.Errorf("%w: name is required", ErrInvalidProduct)
	}
	if !ValidSlug(p.Slug) {
		return fmt.Errorf("%w: %w: %q", ErrInvalidProduct, ErrInvalidSlug, p.Slug)
	}
	if err := p.Asset.Validate(); err != nil {
		return fmt.Errorf("%w: %s: %w", ErrInvalidProduct, p.Slug, err)
	}
	for _, c := range p.Colors {
		if !hexPattern.MatchString(c.Hex) {
			return fmt.Errorf("%w: %s: colour %q has invalid hex %q", ErrInvalidProduct, p.Slug, c.Name, c.Hex)
		}
	}
	return nil
}

// DefaultProducts returns the built-in showroom catalogue.
func DefaultProducts() []Product {
	return []Product{
		{
			Slug:        "modern-comfort-sofa",
			Name:        arlaunch.DefaultAsset.Name,
			Category:    "Sofas",
			Description: "Experience ultimate comfort with our Modern Comfort Sofa. Crafted with premium materials and contemporary design, this sofa combines style and functionality to elevate your living space.",
			Features: []string{
				"Premium fabric upholstery",
				"Solid hardwood frame",
				"High-density foam cushions",
				"Removable cushion covers",
				"Easy assembly",
			},
			Specifications: []Spec{
				{Label: "Dimensions", Value: `84" W × 36" D × 32" H`},
				{Label: "Weight", Value: "95 lbs"},
				{Label: "Material", Value: "Fabric, Hardwood, Foam"},
				{Label: "Color", Value: "Charcoal Gray"},
				{Label: "Warranty", Value: "5 years"},
			},
			Colors: []Color{
				{Name: "Charcoal Gray", Hex: "#4A5568"},
				{Name: "Navy Blue", Hex: "#2D3748"},
				{Name: "Cream", Hex: "#F7FAFC"},
				{Name: "Brown", Hex: "#744210"},
			},
			Asset: arlaunch.DefaultAsset,
		},
	}
}
