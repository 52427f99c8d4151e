package generation

import (
	"encoding/json"

	"cosmos-server/internal/settings"
	"cosmos-server/internal/spatial"
)

// SystemRequest asks for the system at Coordinates.
type SystemRequest struct {
	Settings    settings.GenerationSettings `json:"settings"`
	Coordinates spatial.SpaceCoordinates    `json:"coordinates"`
}

// NewSystemRequest returns a request for the origin with default settings.
func NewSystemRequest() SystemRequest {
	return SystemRequest{Settings: settings.Default()}
}

// UnmarshalJSON keeps default settings when the request omits them.
func (r *SystemRequest) UnmarshalJSON(data []byte) error {
	type plain SystemRequest
	decoded := plain(NewSystemRequest())
	if err := json.Unmarshal(data, &decoded); err != nil {
		return err
	}
	*r = SystemRequest(decoded)
	return nil
}
