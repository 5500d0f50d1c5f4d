package inventory

import (
	"errors"
	"testing"

	"inventory-manager/core/source"
	"inventory-manager/core/version"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const yamlExtension = `
extension_id: core
extension_common_name: Core Devices
extension_version: 1.2.0-beta.1
manufacturers:
  - id: acme
    common_name: Acme
devices:
  - true_name: x1
    common_name: X1
    manufacturer: acme
    classification: laptop
    primary_model_identifiers: [X1-A, X1-B]
    extended_model_identifiers: [X1-A-EU]
`

func TestParseDocument_TOML(t *testing.T) {
	doc := source.Document{Name: "core.toml", Format: source.FormatTOML, Data: []byte(extensionTOML("core", "Core", "1.0.0", "acme", "globex"))}

	ext, err := ParseDocument(doc)
	require.NoError(t, err)

	assert.Equal(t, "core", ext.Meta.ID.String())
	assert.Equal(t, "Core", ext.Meta.DisplayName)
	assert.True(t, ext.Meta.Version.Equal(version.MustParse("1.0.0")))
	require.Len(t, ext.Manufacturers, 2)
	assert.Equal(t, []string{"core"}, ext.Manufacturers[0].Extensions)
	require.Len(t, ext.Classifications, 1)
	require.Len(t, ext.Devices, 2)
	assert.Equal(t, "core/acme/laptop/acme-1.0.0", ext.Devices[0].ID)
	assert.Equal(t, []string{"acme-1"}, ext.Devices[0].PrimaryModelIdentifiers)
	assert.Equal(t, []string{}, ext.Devices[0].ExtendedModelIdentifiers)
}

func TestParseDocument_YAML(t *testing.T) {
	doc := source.Document{Name: "core.yaml", Format: source.FormatYAML, Data: []byte(yamlExtension)}

	ext, err := ParseDocument(doc)
	require.NoError(t, err)

	assert.Equal(t, "1.2.0-beta.1", ext.Meta.Version.String())
	assert.Empty(t, ext.Classifications)
	require.Len(t, ext.Devices, 1)
	assert.Equal(t, "core/acme/laptop/x1", ext.Devices[0].ID)
	assert.Equal(t, []string{"X1-A", "X1-B"}, ext.Devices[0].PrimaryModelIdentifiers)
}

func TestParseDocument_Errors(t *testing.T) {
	tests := []struct {
		name    string
		format  source.Format
		data    string
		invalid bool
	}{
		{"TOML unknown key", source.FormatTOML, "extension_id = \"a\"\ncolour = \"red\"\n", false},
		{"YAML unknown key", source.FormatYAML, "extension_id: a\ncolour: red\n", false},
		{"Malformed TOML", source.FormatTOML, "extension_id = \n", false},
		{"Missing id", source.FormatTOML, "extension_common_name = \"A\"\nextension_version = \"1.0.0\"\n", true},
		{"Missing name", source.FormatTOML, "extension_id = \"a\"\nextension_version = \"1.0.0\"\n", true},
		{"Missing version", source.FormatTOML, "extension_id = \"a\"\nextension_common_name = \"A\"\n", true},
		{"Shorthand version", source.FormatTOML, "extension_id = \"a\"\nextension_common_name = \"A\"\nextension_version = \"1.0\"\n", true},
		{
			"Duplicate manufacturer", source.FormatYAML,
			"extension_id: a\nextension_common_name: A\nextension_version: 1.0.0\nmanufacturers:\n  - {id: m, common_name: M}\n  - {id: m, common_name: N}\n",
			true,
		},
		{
			"Incomplete device", source.FormatYAML,
			"extension_id: a\nextension_common_name: A\nextension_version: 1.0.0\ndevices:\n  - {true_name: d, common_name: D}\n",
			true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := ParseDocument(source.Document{Name: "a", Format: tt.format, Data: []byte(tt.data)})
			require.Error(t, err)
			assert.Equal(t, tt.invalid, errors.Is(err, ErrInvalidDocument))
		})
	}
}

func TestParseDocument_InvalidVersionWrapsVersionError(t *testing.T) {
	data := "extension_id = \"a\"\nextension_common_name = \"A\"\nextension_version = \"v1.0.0\"\n"
	_, err := ParseDocument(source.Document{Name: "a.toml", Format: source.FormatTOML, Data: []byte(data)})

	var verr *ValidationError
	require.ErrorAs(t, err, &verr)
	assert.Equal(t, "a.toml", verr.Document)
	assert.Contains(t, verr.Problem, "leading 'v'")
}

func TestParseDocument_UnsupportedFormat(t *testing.T) {
	_, err := ParseDocument(source.Document{Name: "a.json", Format: "json"})
	assert.ErrorIs(t, err, source.ErrUnsupportedFormat)
}
