package models

// UserConfig carries per-caller portal preferences. Gender and Instructions
// are nullable to mirror the portal's existing contract.
type UserConfig struct {
	Nickname     string  `json:"nickname"`
	Gender       *string `json:"gender"`
	Language     string  `json:"language"`
	Instructions *string `json:"instructions"`
}

// UserConfigPatch is a partial update; nil fields are left untouched.
type UserConfigPatch struct {
	Nickname     *string `json:"nickname"`
	Gender       *string `json:"gender"`
	Language     *string `json:"language"`
	Instructions *string `json:"instructions"`
}

// DefaultUserConfig is the record handed to callers that have never written
// their configuration.
func DefaultUserConfig() UserConfig {
	return UserConfig{
		Nickname: "guest1234",
		Language: "ko",
	}
}
