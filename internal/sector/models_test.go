package sector

import (
	"encoding/json"
	"testing"

	"cosmos-server/internal/spatial"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestChildOffset(t *testing.T) {
	parent := spatial.NewCoordinates(-1, 0, 2)

	assert.Equal(t, 0, ChildOffset(parent, spatial.NewCoordinates(-4, 0, 8), 4))
	assert.Equal(t, 3+2*4+1*16, ChildOffset(parent, spatial.NewCoordinates(-1, 2, 9), 4))
	assert.Equal(t, 63, ChildOffset(parent, spatial.NewCoordinates(-1, 3, 11), 4))
}

func TestDivision_JSON(t *testing.T) {
	d := Division{
		Level:  1,
		Type:   spatial.EntityTypeSubSector,
		Index:  spatial.NewCoordinates(0, -1, 0),
		Path:   []int{5},
		Bounds: spatial.Box{Min: spatial.NewCoordinates(0, -16, 0), Max: spatial.NewCoordinates(15, -1, 15)},
		Name:   "Alpha-6",
	}

	data, err := json.Marshal(d)
	require.NoError(t, err)
	assert.Contains(t, string(data), `"type":"sub_sector"`)
	assert.Contains(t, string(data), `"path":[5]`)

	var decoded Division
	require.NoError(t, json.Unmarshal(data, &decoded))
	assert.Equal(t, d, decoded)
}
