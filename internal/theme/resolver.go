package theme

// Overrides carries optional per-mode colors. Empty means not supplied.
type Overrides struct {
	Light string
	Dark  string
}

// For returns the override for mode m, or "" when none was given.
func (o Overrides) For(m Mode) string {
	if m == Dark {
		return o.Dark
	}
	return o.Light
}

// Resolver picks the effective color for a role.
type Resolver struct {
	palette func() Palette
	mode    ModeFunc
}

// NewResolver resolves against a fixed palette.
func NewResolver(p Palette, mode ModeFunc) *Resolver {
	return &Resolver{palette: func() Palette { return p }, mode: mode}
}

// NewRegistryResolver resolves against whichever palette is active in the
// registry at call time.
func NewRegistryResolver(mode ModeFunc) *Resolver {
	return &Resolver{palette: Current, mode: mode}
}

// Mode returns the mode the resolver would use right now.
func (r *Resolver) Mode() Mode {
	if r.mode == nil {
		return Light
	}
	return r.mode()
}

// Resolve returns the override for the active mode when present, else the
// palette entry for role. Callers only pass roles the palette defines.
func (r *Resolver) Resolve(o Overrides, role Role) string {
	m := r.Mode()
	if c := o.For(m); c != "" {
		return c
	}
	return r.palette().Color(m, role)
}
