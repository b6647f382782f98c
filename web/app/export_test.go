package app

// NewModuleFromLayouts builds the console with a substitute layout filesystem.
var NewModuleFromLayouts = newModule
