package analysis

// Config carries every tunable the aggregator uses. The keyword
// vocabularies, baselines, score weights and the view-to-subscriber
// conversion rate are uncalibrated dashboard heuristics; they live here
// instead of in constants so tests and deployments can substitute them.
type Config struct {
	// ShortsThresholdSeconds splits shorts from long-form (YouTube's 60s rule).
	ShortsThresholdSeconds int
	// ForecastWeeks is the projection horizon (6 months ~ 26 weeks).
	ForecastWeeks int
	// SubsConversionRate estimates subscribers gained per projected view.
	SubsConversionRate float64

	CTAWords       []string
	CommunityWords []string
	MonetWords     []string
	Stopwords      []string

	// Quality score: weighted blend of runtime, engagement and topic
	// diversity sub-scores, each clamped to [0,1], scaled to 0-10.
	LongRuntimeBaselineSeconds   float64
	ShortsRuntimeBaselineSeconds float64
	RuntimeWeight                float64
	EngagementWeight             float64
	TopicWeight                  float64

	// Community score: weighted blend of comment volume and community
	// keyword presence, scaled to 0-10.
	CommentsBaseline        float64
	CommentsWeight          float64
	CommunityPresenceWeight float64
}

// DefaultConfig returns the analyzer configuration with the inherited
// heuristic values.
func DefaultConfig() Config {
	return Config{
		ShortsThresholdSeconds: 60,
		ForecastWeeks:          26,
		SubsConversionRate:     0.001,

		CTAWords: []string{
			"subscribe", "join", "enroll", "download", "signup", "sign up",
			"visit", "buy", "purchase", "link in description", "link in bio",
			"course", "free course", "patreon", "donate", "sponsor",
			"sponsored", "affiliate", "discount",
		},
		CommunityWords: []string{
			"discord", "telegram", "community", "facebook group",
			"paid community", "newsletter", "live session", "q&a",
			"ask your doubt", "join us",
		},
		MonetWords: []string{
			"sponsor", "sponsored", "affiliate", "udemy", "coursera",
			"patreon", "merch", "adsense", "brand",
		},
		Stopwords: []string{
			"the", "and", "for", "with", "to", "a", "an", "in", "of", "is",
			"at", "by", "on",
			"how", "what", "learn", "get", "make", "use", "do", "can",
			"will", "should",
			"tutorial", "lesson", "video", "introduction", "session",
			"guide", "course", "part", "episode", "series", "chapter",
			"lecture",
			"new", "best", "top", "this", "that", "your", "from", "all",
			"about", "into", "complete", "full", "easy", "simple", "quick",
			"free", "basic", "advanced",
			"2023", "2024", "2025", "today", "now",
			"one", "two", "three", "four", "five", "six", "seven", "eight",
			"nine", "ten",
		},

		LongRuntimeBaselineSeconds:   1200,
		ShortsRuntimeBaselineSeconds: 30,
		RuntimeWeight:                0.4,
		EngagementWeight:             0.4,
		TopicWeight:                  0.2,

		CommentsBaseline:        10,
		CommentsWeight:          0.6,
		CommunityPresenceWeight: 0.4,
	}
}
