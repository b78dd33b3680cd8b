package catalog

import (
	"errors"
	"fmt"
	"io"
	"os"

	"gopkg.in/yaml.v3"
)

type yamlCatalog struct {
	Products []Product `yaml:"products"`
}

// LoadYAML decodes a seed document of the form
//
//	products:
//	  - name: Modern Comfort Sofa
//	    asset: {scene_url: /assets/sofa.glb, ar_url: /assets/sofa.usdz}
//
// Products are normalized and validated; unknown keys are rejected.
func LoadYAML(r io.Reader) ([]Product, error) {
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)

	var doc yamlCatalog
	if err := dec.Decode(&doc); err != nil {
		if errors.Is(err, io.EOF) {
			return nil, nil
		}
		return nil, errors.Join(ErrFailedToLoad, err)
	}

	products := make([]Product, 0, len(doc.Products))
	for _, p := range doc.Products {
		p = p.Normalize()
		if err := p.Validate(); err != nil {
			return nil, err
		}
		products = append(products, p)
	}
	return products, nil
}

// LoadYAMLFile opens path and decodes it with LoadYAML.
func LoadYAMLFile(path string) ([]Product, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrFailedToLoad, err)
	}
	defer func() { _ = f.Close() }()
	return LoadYAML(f)
}
