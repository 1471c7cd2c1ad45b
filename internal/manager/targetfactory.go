package manager

import (
	"fmt"

	"github.com/hidbridge/daemon/internal/target"
	"github.com/hidbridge/daemon/internal/target/debugtgt"
	"github.com/hidbridge/daemon/internal/target/gamepadtgt"
	"github.com/hidbridge/daemon/internal/target/keyboardtgt"
	"github.com/hidbridge/daemon/internal/target/mousetgt"
	"github.com/hidbridge/daemon/internal/target/touchscreentgt"
)

// buildTarget instantiates the target.Driver named by kind. Websocket
// targets are built separately in websocket.go once internal/wsserver
// accepts a client, since they need a live *websocket.Conn rather than a kind
// string alone.
func buildTarget(kind target.Kind) (target.Driver, error) {
	switch kind {
	case target.KindGamepad:
		return gamepadtgt.New(kind, gamepadtgt.PersonalityGeneric)
	case target.KindXboxGamepad:
		return gamepadtgt.New(kind, gamepadtgt.PersonalityXbox)
	case target.KindDualSense:
		return gamepadtgt.New(kind, gamepadtgt.PersonalityDualSense)
	case target.KindSteamDeck:
		return gamepadtgt.New(kind, gamepadtgt.PersonalitySteamDeck)
	case target.KindKeyboard:
		return keyboardtgt.New()
	case target.KindMouse:
		return mousetgt.New()
	case target.KindTouchscreen:
		return touchscreentgt.New()
	case target.KindDebug:
		return debugtgt.New(), nil
	default:
		return nil, fmt.Errorf("manager.buildTarget: unbuildable target kind %q (needs a live connection)", kind)
	}
}
