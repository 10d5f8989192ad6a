package types

// ShowToastMsg asks the shell to mount a new toast.
type ShowToastMsg struct {
	Toast Toast
}

// ToggleSidebarMsg toggles sidebar visibility.
type ToggleSidebarMsg struct{}

// ConfigFileChangedMsg notifies the shell that the config file was
// modified on disk. The shell reloads the config and re-derives the
// theme on the main goroutine.
type ConfigFileChangedMsg struct {
	Path string
}
