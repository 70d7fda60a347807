package background

type ActionRunArgs struct {
	ActionID int64 `json:"action_id"`
}

func (a ActionRunArgs) Kind() string {
	return "action_run"
}

type MetricSampleArgs struct {
	MetricID int64 `json:"metric_id"`
}

func (m MetricSampleArgs) Kind() string {
	return "metric_sample"
}
