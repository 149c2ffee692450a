package instrument

// Category is the host-facing plugin category.
type Category int

const (
	CategoryEffect Category = iota
	CategorySynth
)

// Info is the static plugin description reported to hosts.
type Info struct {
	Name     string
	UniqueID int32
	Inputs   int
	Outputs  int
	Category Category
}

// PluginInfo returns the instrument's host description: no inputs and a
// stereo output pair.
func PluginInfo() Info {
	return Info{
		Name:     "Granulizor",
		UniqueID: 3332,
		Inputs:   0,
		Outputs:  OutputChannels,
		Category: CategorySynth,
	}
}
