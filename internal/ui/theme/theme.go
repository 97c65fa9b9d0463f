// Package theme keeps the document's light/dark mode and the stored
// preference in step.
package theme

import (
	"github.com/Its-donkey/ai-directory/internal/ui/dom"
	"github.com/Its-donkey/ai-directory/internal/ui/model"
	"github.com/Its-donkey/ai-directory/logging"
)

// Store reads and writes the persisted preference. It is the only writer of
// the theme slot.
type Store struct {
	storage dom.Storage
}

// NewStore wraps storage. A nil storage behaves as permanently empty.
func NewStore(storage dom.Storage) *Store {
	return &Store{storage: storage}
}

// Load returns the stored preference. Missing or unrecognised values yield
// light.
func (s *Store) Load() model.ThemePreference {
	if s == nil || s.storage == nil {
		return model.ThemeLight
	}
	value, ok := s.storage.Get(model.ThemeStorageKey)
	if ok && model.ThemePreference(value) == model.ThemeDark {
		return model.ThemeDark
	}
	return model.ThemeLight
}

// Save persists pref.
func (s *Store) Save(pref model.ThemePreference) {
	if s == nil || s.storage == nil {
		return
	}
	s.storage.Set(model.ThemeStorageKey, string(pref))
}

// Controller owns the body's dark-mode flag and the toggle button icon.
type Controller struct {
	body     dom.Element
	button   dom.Element
	store    *Store
	logger   *logging.Logger
	bindings dom.Bindings
}

// Init applies the stored preference and binds the toggle button when it
// exists. It returns nil when the document has no body.
func Init(doc dom.Document, store *Store, hooks model.Hooks, logger *logging.Logger) *Controller {
	body := doc.Body()
	if body == nil {
		return nil
	}
	c := &Controller{
		body:   body,
		button: doc.ByID(hooks.ThemeToggle),
		store:  store,
		logger: logger,
	}
	if c.store.Load() == model.ThemeDark {
		c.body.AddClass(model.DarkModeClass)
		c.setIcon(model.IconSwitchToLight)
	}
	c.bindings.On(c.button, "click", func(dom.Event) { c.Toggle() })
	return c
}

// Toggle flips the mode, persists it and updates the icon.
func (c *Controller) Toggle() model.ThemePreference {
	if c == nil {
		return model.ThemeLight
	}
	pref := model.ThemeLight
	icon := model.IconSwitchToDark
	if c.body.ToggleClass(model.DarkModeClass) {
		pref = model.ThemeDark
		icon = model.IconSwitchToLight
	}
	c.store.Save(pref)
	c.setIcon(icon)
	c.logger.Debug("theme", "theme toggled", map[string]any{"theme": string(pref)})
	return pref
}

// Current reports the mode shown by the document.
func (c *Controller) Current() model.ThemePreference {
	if c != nil && c.body.HasClass(model.DarkModeClass) {
		return model.ThemeDark
	}
	return model.ThemeLight
}

// Release detaches the toggle listener. The applied mode stays.
func (c *Controller) Release() {
	if c == nil {
		return
	}
	c.bindings.Release()
}

func (c *Controller) setIcon(icon string) {
	if c.button != nil {
		c.button.SetText(icon)
	}
}
