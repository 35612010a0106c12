package dto

import "craftvale.gg/communityapi/internal/entity"

// UpdateProfileInput carries a partial profile update; only non-nil fields
// are sent to the store.
type UpdateProfileInput struct {
	DisplayName       *string `json:"display_name" form:"display_name"`
	MinecraftUsername *string `json:"minecraft_username" form:"minecraft_username"`
}

type ProfileResponse struct {
	Profile *entity.Profile `json:"profile"`
}
