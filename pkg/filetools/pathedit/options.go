package pathedit

// Options configures how a Session names and lays out its output.
type Options struct {
	// SheetName is the name of the single output sheet.
	SheetName string
	// FilenamePrefix is prepended to the source file name to build the output name.
	FilenamePrefix string
	// DefaultFilename is used when the source has no name.
	DefaultFilename string
}

// DefaultOptions returns the standard output settings.
func DefaultOptions() Options {
	return Options{
		SheetName:       "Modified Data",
		FilenamePrefix:  "modified_",
		DefaultFilename: "data.xlsx",
	}
}

func (o Options) withDefaults() Options {
	d := DefaultOptions()
	if o.SheetName == "" {
		o.SheetName = d.SheetName
	}
	if o.FilenamePrefix == "" {
		o.FilenamePrefix = d.FilenamePrefix
	}
	if o.DefaultFilename == "" {
		o.DefaultFilename = d.DefaultFilename
	}
	return o
}
