package display

import (
	"github.com/veandco/go-sdl2/sdl"

	"github.com/QuestScreen/esdemo/config"
)

// Classify decides whether event closes the window. A quit request closes
// with 0. A key press closes with the return value of the matching action;
// without actions, any key closes with 0.
func Classify(event sdl.Event, actions []config.KeyAction) (done bool, code int) {
	switch e := event.(type) {
	case *sdl.QuitEvent:
		return true, 0
	case *sdl.KeyboardEvent:
		if e.Type != sdl.KEYDOWN {
			return false, 0
		}
		if len(actions) == 0 {
			return true, 0
		}
		for i := range actions {
			if e.Keysym.Sym == actions[i].Key {
				return true, actions[i].ReturnValue
			}
		}
	}
	return false, 0
}
