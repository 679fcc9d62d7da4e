package exporter

// ProgressEvent packaging progress, reported once per warehouse
type ProgressEvent struct {
	Percent   int    `json:"percent"`
	Stage     string `json:"stage"`
	Warehouse string `json:"warehouse,omitempty"`
}

func reportProgress(progress func(ProgressEvent), percent int, stage, warehouse string) {
	if progress == nil {
		return
	}
	if percent < 0 {
		percent = 0
	}
	if percent > 100 {
		percent = 100
	}
	progress(ProgressEvent{
		Percent:   percent,
		Stage:     stage,
		Warehouse: warehouse,
	})
}

// stepPercent progress after done of total steps
func stepPercent(done, total int) int {
	if total <= 0 {
		return 100
	}
	return done * 100 / total
}
