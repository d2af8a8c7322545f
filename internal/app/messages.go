package app

// stateLoadedMsg delivers the snapshot load that runs at startup.
type stateLoadedMsg struct {
	state *userState
	err   error
}

// snapshotSavedMsg confirms an async snapshot write.
type snapshotSavedMsg struct {
	err error
}
