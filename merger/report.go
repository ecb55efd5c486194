package merger

// Status represents merge run outcome
type Status int

const (
	// StatusMerged means output was written
	StatusMerged Status = iota
	// StatusEmpty means no input file matched, nothing was written
	StatusEmpty
)

func (s Status) String() string {
	switch s {
	case StatusMerged:
		return "merged"
	case StatusEmpty:
		return "empty"
	}
	return "unknown"
}

// Report represents a successful merge run
type Report struct {
	Status  Status
	Input   string   // normalized input location
	Files   []string // merged file URLs, merge order
	Output  string   // absolute output location
	Rows    int      // distinct identifier count
	Columns int      // output column count, identifier included
	Dropped int      // input rows skipped for a missing identifier
	Digest  uint64   // highway hash of the written output
}
