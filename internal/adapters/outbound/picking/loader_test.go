package picking_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/abdidvp/easydelivery/internal/adapters/outbound/picking"
	"github.com/abdidvp/easydelivery/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeFile(t *testing.T, name, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))
	return path
}

func TestFileLoader_YAML(t *testing.T) {
	path := writeFile(t, "out.yaml", `
id: 42
name: WH/OUT/00042
carrier:
  id: 7
  name: Easy Express
  delivery_type: easy_delivery
partner:
  name: Jane Doe
  street: 12 Rue des Fleurs
  city: Paris
  country_code: FR
moves:
  - product_name: Mug
    weight: 0.4
    list_price: 12.5
    quantity: 2
    description: Blue mug
  - product_name: Box
    weight: 1
    list_price: 3
    quantity: 1
    package_level_id: 9
`)

	p, err := picking.New().Load(path)
	require.NoError(t, err)

	assert.Equal(t, int64(42), p.ID)
	assert.Equal(t, "WH/OUT/00042", p.Name)
	require.NotNil(t, p.Carrier)
	assert.True(t, p.Carrier.SupportsLabelFetch())
	assert.Equal(t, "Jane Doe", p.Partner.Name)
	require.Len(t, p.Moves, 2)
	assert.Equal(t, 12.5, p.Moves[0].ListPrice)
	assert.True(t, p.Moves[1].InPackage())
	assert.Len(t, p.MovesWithoutPackage(), 1)
}

func TestFileLoader_JSON(t *testing.T) {
	path := writeFile(t, "out.json", `{
  "id": 5,
  "name": "WH/OUT/00005",
  "carrier": {"name": "Flat", "delivery_type": "fixed"},
  "partner": {"name": "Bob", "zip": "1000"},
  "moves": [{"product_name": "Pen", "weight": 0.01, "list_price": 1.2, "quantity": 10, "description": "Pens"}]
}`)

	p, err := picking.New().Load(path)
	require.NoError(t, err)
	assert.Equal(t, int64(5), p.ID)
	assert.Equal(t, domain.DeliveryTypeFixed, p.Carrier.DeliveryType)
	assert.Equal(t, "1000", p.Partner.Zip)
	assert.False(t, p.Carrier.SupportsLabelFetch())
}

func TestFileLoader_UnknownDeliveryType(t *testing.T) {
	path := writeFile(t, "out.yaml", "name: X\ncarrier:\n  delivery_type: pigeon\n")

	_, err := picking.New().Load(path)
	assert.ErrorContains(t, err, `unknown delivery_type "pigeon"`)
}

func TestFileLoader_MissingFile(t *testing.T) {
	_, err := picking.New().Load(filepath.Join(t.TempDir(), "nope.yaml"))
	assert.ErrorContains(t, err, "reading picking")
}

func TestFileLoader_InvalidYAML(t *testing.T) {
	path := writeFile(t, "out.yaml", "{{{")

	_, err := picking.New().Load(path)
	assert.ErrorContains(t, err, "parsing out.yaml")
}

func TestFileLoader_CarriersRoundTrip(t *testing.T) {
	path := writeFile(t, "carriers.yaml", `
- id: 1
  name: Easy Express
  delivery_type: easy_delivery
  fixed_price: 7.5
- id: 2
  name: Pickup
  delivery_type: fixed
  fixed_price: 3
`)

	l := picking.New()
	carriers, err := l.LoadCarriers(path)
	require.NoError(t, err)
	require.Len(t, carriers, 2)
	assert.Equal(t, domain.DeliveryTypeEasyDelivery, carriers[0].DeliveryType)

	require.NoError(t, l.SaveCarriers(path, domain.ReleaseEasyDelivery(carriers)))

	saved, err := l.LoadCarriers(path)
	require.NoError(t, err)
	assert.Equal(t, domain.DeliveryTypeFixed, saved[0].DeliveryType)
	assert.Zero(t, saved[0].FixedPrice)
	assert.Equal(t, 3.0, saved[1].FixedPrice)
}

func TestFileLoader_CarriersUnknownDeliveryType(t *testing.T) {
	path := writeFile(t, "carriers.yaml", "- name: Owl\n  delivery_type: pigeon\n")
	_, err := picking.New().LoadCarriers(path)
	assert.ErrorContains(t, err, `unknown delivery_type "pigeon"`)
}
