package domain

// ShiftAssignment links an employee to a shift, optionally for a task.
// Overlaps and staffing limits are not checked.
type ShiftAssignment struct {
	ID           int64
	ShiftID      int64
	EmployeeID   int64
	TaskID       *int64
	Note         *string
	CheckInTime  *ClockTime
	CheckOutTime *ClockTime
}

// AssignmentDetail is an assignment with its referenced rows loaded.
type AssignmentDetail struct {
	ShiftAssignment
	Shift    Shift
	Employee Employee
	Task     *Task
}

// AssignmentPatch carries the fields of a partial update. A nil field is
// left untouched.
type AssignmentPatch struct {
	ShiftID      *int64
	EmployeeID   *int64
	TaskID       *int64
	Note         *string
	CheckInTime  *ClockTime
	CheckOutTime *ClockTime
}

// Apply overwrites the fields of a that are present in the patch.
func (p AssignmentPatch) Apply(a *ShiftAssignment) {
	if p.ShiftID != nil {
		a.ShiftID = *p.ShiftID
	}
	if p.EmployeeID != nil {
		a.EmployeeID = *p.EmployeeID
	}
	if p.TaskID != nil {
		id := *p.TaskID
		a.TaskID = &id
	}
	if p.Note != nil {
		note := *p.Note
		a.Note = &note
	}
	if p.CheckInTime != nil {
		in := *p.CheckInTime
		a.CheckInTime = &in
	}
	if p.CheckOutTime != nil {
		out := *p.CheckOutTime
		a.CheckOutTime = &out
	}
}

// Empty reports whether the patch changes nothing.
func (p AssignmentPatch) Empty() bool {
	return p.ShiftID == nil && p.EmployeeID == nil && p.TaskID == nil &&
		p.Note == nil && p.CheckInTime == nil && p.CheckOutTime == nil
}

// MovesReferences reports whether the patch touches a foreign key.
func (p AssignmentPatch) MovesReferences() bool {
	return p.ShiftID != nil || p.EmployeeID != nil || p.TaskID != nil
}
