package settings

import (
	"github.com/shishobooks/bottomnav/pkg/models"
	"github.com/shishobooks/bottomnav/pkg/presets"
)

// SavePayload carries a whole document. Its contents are sanitized rather
// than validated, so any object is accepted.
type SavePayload struct {
	Settings map[string]interface{} `json:"settings" validate:"required"`
}

type ImportPayload struct {
	Text string `json:"text" validate:"required,max=1048576"`
}

type ApplyPresetPayload struct {
	Key string `json:"key" mod:"trim,lcase" validate:"required,key"`
}

// DocumentResponse is returned by every operation that changes the document.
type DocumentResponse struct {
	OK        bool                       `json:"ok"`
	Document  *models.NavigationSettings `json:"document"`
	Defaulted []string                   `json:"defaulted,omitempty"`
}

type ExportResponse struct {
	OK       bool   `json:"ok"`
	Text     string `json:"text"`
	Filename string `json:"filename"`
}

type PresetsResponse struct {
	OK      bool             `json:"ok"`
	Presets []presets.Preset `json:"presets"`
}
