package model

// RunStatus represents the terminal status of one interactive run
type RunStatus string

const (
	// RunStatusCompleted means the download finished successfully
	RunStatusCompleted RunStatus = "Completed"

	// RunStatusCancelled means the user declined the selection or closed the input
	RunStatusCancelled RunStatus = "Cancelled"

	// RunStatusNothingSelected means no downloadable format was chosen
	RunStatusNothingSelected RunStatus = "NothingSelected"

	// RunStatusInvalidInput means the mode selector or destination path was rejected
	RunStatusInvalidInput RunStatus = "InvalidInput"

	// RunStatusFailed means the external tool failed or its output could not be parsed
	RunStatusFailed RunStatus = "Failed"

	// RunStatusInterrupted means a signal stopped the tool while it was running
	RunStatusInterrupted RunStatus = "Interrupted"
)

// String returns the string representation of RunStatus
func (rs RunStatus) String() string {
	return string(rs)
}

// IsSuccess returns true if the run produced a download
func (rs RunStatus) IsSuccess() bool {
	return rs == RunStatusCompleted
}

// IsSoftExit returns true if the run ended on a user decision rather than a failure
func (rs RunStatus) IsSoftExit() bool {
	return rs == RunStatusCancelled || rs == RunStatusNothingSelected || rs == RunStatusInvalidInput
}
