package reader

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestProjectLoader_Load(t *testing.T) {
	// Arrange
	reader := strings.NewReader(`
name: base-cabinet-24
variables:
  W: 24
  H: 30
  D: 12
  T: 0.75
  T_door: 0.75
  H_drawer: 6
`)
	loader := NewProjectLoader(reader)

	// Act
	project, err := loader.Load(true)

	// Assert
	require.NoError(t, err)
	require.NotNil(t, project)
	assert.Equal(t, "base-cabinet-24", project.Name)
	assert.Len(t, project.Variables, 6)
	assert.Equal(t, 24.0, project.Variables["W"])
	assert.Equal(t, 0.75, project.Variables["T_door"])
}

func TestProjectLoader_Load_InvalidVariableName(t *testing.T) {
	reader := strings.NewReader(`
name: broken
variables:
  "bad name": 1
`)
	loader := NewProjectLoader(reader)

	_, err := loader.Load(true)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "invalid variable name")
}

func TestProjectLoader_Load_MalformedYAML(t *testing.T) {
	reader := strings.NewReader("name: [unclosed")
	loader := NewProjectLoader(reader)

	_, err := loader.Load(false)
	assert.Error(t, err)
}

func TestModelLoader_Load(t *testing.T) {
	reader := strings.NewReader(`
name: base-cabinet
description: standard frameless base cabinet
parts:
  - name: side panel
    category: panel
    width: D
    height: H
    quantity: 2
    edgeBanding: [left]
  - name: door
    category: door
    width: W/2 - 0.5
    height: H
    quantity: 2
    edgeBanding: [top, bottom, left, right]
`)
	loader := NewModelLoader(reader)

	model, err := loader.Load(true)
	require.NoError(t, err)
	require.Len(t, model.Parts, 2)

	side := model.Parts[0]
	assert.Equal(t, "side panel", side.Name)
	assert.Equal(t, "D", side.Formulas.Width)
	assert.Equal(t, "H", side.Formulas.Height)
	assert.Empty(t, side.Formulas.Depth)
	assert.Equal(t, 2, side.Quantity)

	door := model.Parts[1]
	assert.Equal(t, "W/2 - 0.5", door.Formulas.Width)
	assert.Len(t, door.EdgeBanding, 4)
}

func TestModelLoader_Load_DefaultsQuantityToOne(t *testing.T) {
	reader := strings.NewReader(`
name: shelf-unit
parts:
  - name: shelf
    category: shelf
    width: W - 2*T
`)
	loader := NewModelLoader(reader)

	model, err := loader.Load(true)
	require.NoError(t, err)
	assert.Equal(t, 1, model.Parts[0].Quantity)
}
