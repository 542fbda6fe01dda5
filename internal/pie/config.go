package pie

import "fmt"

// Hooks are optional callbacks around the open and close transitions. A
// "before" hook returning false vetoes the transition.
type Hooks struct {
	BeforeOpen  func(*Menu) bool
	AfterOpen   func(*Menu)
	BeforeClose func(*Menu) bool
	AfterClose  func(*Menu)
}

// Config is fixed for the lifetime of a Menu.
type Config struct {
	// Size is the side length of the square the menu occupies.
	Size float64
	// StartRadius is the fraction of the maximum radius the intro starts at.
	StartRadius float64
	// EdgeExtension lets slices reach to the screen edge; the menu is never
	// dismissed for the pointer straying too far from the center.
	EdgeExtension bool
	// ShowOnPress opens the menu on button press instead of release.
	ShowOnPress bool
	Hooks       Hooks
}

// DefaultConfig returns the stock menu configuration.
func DefaultConfig() Config {
	return Config{
		Size:        320,
		StartRadius: .75,
	}
}

// Validate reports configuration values the layout cannot work with.
func (c Config) Validate() error {
	if c.Size <= 0 {
		return fmt.Errorf("size must be > 0 (got %g)", c.Size)
	}
	if c.StartRadius <= 0 || c.StartRadius > 1 {
		return fmt.Errorf("start radius must be within (0, 1] (got %g)", c.StartRadius)
	}
	return nil
}
