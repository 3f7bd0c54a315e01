package model

import "time"

// AudioProperties holds what a container reader reports for one file.
// Zero values mean the property is unknown.
type AudioProperties struct {
	Duration   time.Duration
	SampleRate uint32
	Bitrate    uint32 // kbps
	Channels   uint16
}

// AudioMetadata combines container properties with subtitle speech statistics
type AudioMetadata struct {
	DurationSeconds       float64 `json:"duration_seconds"`
	SampleRate            uint32  `json:"sample_rate"`
	Bitrate               uint32  `json:"bitrate"`
	Channels              uint16  `json:"channels"`
	SRTSegments           uint    `json:"srt_segments"`
	SRTSpeechDuration     float64 `json:"srt_speech_duration"`
	SRTAvgSegmentDuration float64 `json:"srt_avg_segment_duration"`
}

// SpeechDensity is the subtitled share of the audio duration, in percent.
// It is 0 when the duration is unknown and may exceed 100 for overlapping subtitles.
func (m AudioMetadata) SpeechDensity() float64 {
	if m.DurationSeconds <= 0 {
		return 0
	}
	return m.SRTSpeechDuration / m.DurationSeconds * 100
}

// RecordingInfo is a stat snapshot of one stored recording
type RecordingInfo struct {
	Filename         string  `json:"filename"`
	SizeBytes        uint64  `json:"size_bytes"`
	SizeKB           float64 `json:"size_kb"`
	SizeMB           float64 `json:"size_mb"`
	CreatedTimestamp uint64  `json:"created_timestamp"`
	CreatedDate      string  `json:"created_date"`
}
