package connector

// Registry holds the commands the service exposes, keyed by name.
// It is populated once at startup and read-only afterwards.
type Registry struct {
	commands map[string]Command
	order    []string
}

// NewRegistry builds a registry from the given commands.
func NewRegistry(cmds ...Command) *Registry {
	r := &Registry{
		commands: make(map[string]Command, len(cmds)),
	}
	for _, cmd := range cmds {
		if _, ok := r.commands[cmd.Name()]; ok {
			continue
		}
		r.commands[cmd.Name()] = cmd
		r.order = append(r.order, cmd.Name())
	}
	return r
}

// Get returns the command registered under name.
func (r *Registry) Get(name string) (Command, bool) {
	cmd, ok := r.commands[name]
	return cmd, ok
}

// Metadata describes one registered command for framework discovery.
type Metadata struct {
	Name       string      `json:"name"`
	Parameters []Parameter `json:"parameters"`
}

// List returns discovery metadata for every registered command,
// in registration order.
func (r *Registry) List() []Metadata {
	out := make([]Metadata, 0, len(r.order))
	for _, name := range r.order {
		cmd := r.commands[name]
		out = append(out, Metadata{
			Name:       cmd.Name(),
			Parameters: cmd.Parameters(),
		})
	}
	return out
}
