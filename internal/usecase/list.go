package usecase

// ListWindows enumerates the titles of all titled windows
type ListWindows struct {
	windows ListWindowsGateway
}

// NewListWindows creates the use case
func NewListWindows(windows ListWindowsGateway) *ListWindows {
	return &ListWindows{windows: windows}
}

// Execute returns the titles or the gateway's error unchanged
func (u *ListWindows) Execute() (Result, error) {
	windows, err := u.windows.ListWindows()
	if err != nil {
		return nil, err
	}
	return ListWindowsResult{Windows: windows}, nil
}
