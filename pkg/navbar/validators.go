package navbar

type RenderQuery struct {
	CurrentURL string `query:"current_url" json:"current_url,omitempty" mod:"trim" validate:"omitempty,max=2048,location"`
	PageID     int    `query:"page_id" json:"page_id,omitempty" validate:"min=0"`
	Admin      bool   `query:"admin" json:"admin,omitempty"`
}
