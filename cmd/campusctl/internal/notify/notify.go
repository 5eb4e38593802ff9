package notify

import (
	"github.com/campusworks/campus/pkg/sdk"
	"github.com/pterm/pterm"
)

// PTerm renders session notifications as pterm prefixed messages.
type PTerm struct{}

var _ sdk.Notifier = PTerm{}

func (PTerm) Success(msg string) {
	pterm.Success.Println(msg)
}

func (PTerm) Info(msg string) {
	pterm.Info.Println(msg)
}

func (PTerm) Error(msg string) {
	pterm.Error.Println(msg)
}
