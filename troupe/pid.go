package troupe

// PID is a unique reference to a running actor.
type PID struct {
	ID string
}

// String returns the string representation of the PID.
func (pid *PID) String() string {
	return pid.ID
}
