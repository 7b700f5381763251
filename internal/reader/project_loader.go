package reader

import (
	"io"

	"github.com/mpaky95/cabinetry/internal/domain"
	"gopkg.in/yaml.v3"
)

// ProjectLoader reads a project variable file: the per-project binding the
// design workflow supplies to the formula engine.
type ProjectLoader struct {
	reader io.Reader
}

func NewProjectLoader(reader io.Reader) *ProjectLoader {
	return &ProjectLoader{
		reader: reader,
	}
}

func (pl *ProjectLoader) Load(validate bool) (*domain.Project, error) {
	decoder := yaml.NewDecoder(pl.reader)
	var project domain.Project
	if err := decoder.Decode(&project); err != nil {
		return nil, err
	}
	if validate {
		if err := project.Validate(); err != nil {
			return nil, err
		}
	}
	return &project, nil
}
