package reader

import (
	"io"

	"github.com/mpaky95/cabinetry/internal/domain"
	"gopkg.in/yaml.v3"
)

// modelFile is the YAML shape of a cabinet model definition used by the
// cutlist CLI when no catalog database is configured.
type modelFile struct {
	Name        string `yaml:"name"`
	Description string `yaml:"description"`
	Parts       []struct {
		Name        string   `yaml:"name"`
		Category    string   `yaml:"category"`
		Width       string   `yaml:"width"`
		Height      string   `yaml:"height"`
		Depth       string   `yaml:"depth"`
		EdgeBanding []string `yaml:"edgeBanding"`
		Quantity    int      `yaml:"quantity"`
	} `yaml:"parts"`
}

// ModelLoader reads a cabinet model definition from YAML.
type ModelLoader struct {
	reader io.Reader
}

func NewModelLoader(reader io.Reader) *ModelLoader {
	return &ModelLoader{
		reader: reader,
	}
}

func (ml *ModelLoader) Load(validate bool) (*domain.CabinetModel, error) {
	decoder := yaml.NewDecoder(ml.reader)
	var file modelFile
	if err := decoder.Decode(&file); err != nil {
		return nil, err
	}

	model := domain.CabinetModel{
		Name:        file.Name,
		Description: file.Description,
	}
	for _, p := range file.Parts {
		quantity := p.Quantity
		if quantity == 0 {
			quantity = 1
		}
		part := domain.Part{
			Name:     p.Name,
			Category: domain.PartCategory(p.Category),
			Quantity: quantity,
		}
		part.Formulas.Width = p.Width
		part.Formulas.Height = p.Height
		part.Formulas.Depth = p.Depth
		for _, e := range p.EdgeBanding {
			part.EdgeBanding = append(part.EdgeBanding, domain.Edge(e))
		}
		model.Parts = append(model.Parts, part)
	}

	if validate {
		if err := model.Validate(); err != nil {
			return nil, err
		}
	}
	return &model, nil
}
