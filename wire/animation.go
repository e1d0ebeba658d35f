package wire

// AnimationEntry pairs a scene path with the clip that animates it. The clip
// is built by the animation package; wire only needs it to be encodable.
type AnimationEntry struct {
	Path string `msgpack:"path"`
	Clip any    `msgpack:"clip"`
}

// AnimationOptions controls playback on the viewer side.
type AnimationOptions struct {
	Play        bool `msgpack:"play"`
	Repetitions int  `msgpack:"repetitions"`
}

// SetAnimation installs keyframed clips on the viewer. The command is
// addressed to the scene root.
type SetAnimation struct {
	Animations []AnimationEntry `msgpack:"animations"`
	Options    AnimationOptions `msgpack:"options"`
	Path       string           `msgpack:"path"`
	Type       string           `msgpack:"type"`
}

// NewSetAnimation returns a set_animation command.
func NewSetAnimation(entries []AnimationEntry, opts AnimationOptions) *SetAnimation {
	return &SetAnimation{Animations: entries, Options: opts, Path: "", Type: KindSetAnimation}
}

func (c *SetAnimation) CommandKind() string { return c.Type }
func (c *SetAnimation) CommandPath() string { return c.Path }
