package dto

// SpeakerConnectResponse acknowledges a speaker pairing handshake.
type SpeakerConnectResponse struct {
	Status   string `json:"status"`
	Protocol string `json:"protocol"`
	Version  string `json:"version"`
	DeviceID string `json:"deviceId"`
}
