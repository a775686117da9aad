package response

import (
	"pet-adoption/internal/pkg/flash"

	"github.com/google/uuid"
)

// Page is the envelope for every GET endpoint: the pending notice, the
// session identity, and the page data.
type Page struct {
	Notice    *flash.Notice  `json:"notice,omitempty"`
	Principal *PrincipalInfo `json:"principal,omitempty"`
	Data      any            `json:"data,omitempty"`
}

type PrincipalInfo struct {
	ID   uuid.UUID `json:"id"`
	Kind string    `json:"kind"`
}

type FormPage struct {
	Form   string   `json:"form"`
	Action string   `json:"action"`
	Fields []string `json:"fields"`
}
