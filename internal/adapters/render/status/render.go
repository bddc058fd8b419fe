package status

import (
	"github.com/bnema/school-accounts-cli/internal/adapters/render/frame"
	"github.com/bnema/school-accounts-cli/internal/application"
)

// Render draws the account list, with the feature bindings of composite
// accounts.
func Render(statuses []application.AccountStatus) (string, error) {
	s := newStyles()
	return frame.Render(func() string {
		return renderView(statuses, s)
	})
}
