package domain

import "time"

// Platform identifiers accepted in requests
const (
	PlatformLinkedIn   = "linkedin"
	PlatformTwitter    = "twitter"
	PlatformInstagram  = "instagram"
	PlatformBlog       = "blog"
	PlatformNewsletter = "newsletter"
	PlatformYouTube    = "youtube"
	PlatformCarousel   = "carousel"
)

// Asset keys used in generated theme assets
const (
	AssetLinkedInPost  = "linkedin_post"
	AssetXThread       = "x_thread"
	AssetInstagramPost = "instagram_post"
	AssetShortBlog     = "short_blog"
	AssetEmail         = "email"
	AssetYouTubeScript = "youtube_script"
	AssetCarousel      = "carousel"
)

// AssetKeyForPlatform maps a request platform ID to its asset key
var AssetKeyForPlatform = map[string]string{
	PlatformLinkedIn:   AssetLinkedInPost,
	PlatformTwitter:    AssetXThread,
	PlatformInstagram:  AssetInstagramPost,
	PlatformBlog:       AssetShortBlog,
	PlatformNewsletter: AssetEmail,
	PlatformYouTube:    AssetYouTubeScript,
	PlatformCarousel:   AssetCarousel,
}

// DisplayNameForPlatform maps a request platform ID to the name used in
// prompts and ranking entries
var DisplayNameForPlatform = map[string]string{
	PlatformLinkedIn:   "LinkedIn",
	PlatformTwitter:    "Twitter/X",
	PlatformInstagram:  "Instagram",
	PlatformBlog:       "Blog",
	PlatformNewsletter: "Newsletter/Email",
	PlatformYouTube:    "YouTube",
	PlatformCarousel:   "Carousel",
}

// DisplayNameForAssetKey maps an asset key to the platform name attached to
// ranked posts
var DisplayNameForAssetKey = map[string]string{
	AssetLinkedInPost:  "LinkedIn",
	AssetXThread:       "X",
	AssetInstagramPost: "Instagram",
	AssetShortBlog:     "Blog",
	AssetEmail:         "Email",
	AssetYouTubeScript: "YouTube",
	AssetCarousel:      "Carousel",
}

// ThemeAssets maps asset keys to generated content. Values are strings for
// single-piece platforms and []string for thread-like platforms (x_thread).
type ThemeAssets map[string]any

// Theme is one extracted idea from the source content, the unit around which
// platform assets are generated. Immutable once produced within a run.
type Theme struct {
	ThemeID         string      `json:"theme_id"`
	Title           string      `json:"title"`
	Summary         string      `json:"summary"`
	ImportanceScore int         `json:"importance_score"`
	WhyItSpreads    string      `json:"why_it_spreads"`
	KeyInsights     []string    `json:"key_insights"`
	Assets          ThemeAssets `json:"assets,omitempty"`
}

// RankedPost is one generated asset scored and ordered by predicted
// engagement potential
type RankedPost struct {
	Rank        int    `json:"rank"`
	Platform    string `json:"platform"`
	Score       int    `json:"score"`
	Reason      string `json:"reason"`
	Preview     string `json:"preview"`
	FullContent string `json:"full_content"`
	Content     string `json:"content"`
	Theme       string `json:"theme,omitempty"`
	ThemeID     string `json:"theme_id,omitempty"`
}

// Settings echoes the user-supplied generation options
type Settings struct {
	CreationMode string `json:"creationMode"`
	PostCount    string `json:"postCount"`
	Tone         string `json:"tone"`
}

// ProcessedResult is the top-level aggregate for one pipeline run. It is the
// sole unit of cross-request state and is never persisted server-side.
type ProcessedResult struct {
	Themes        []Theme      `json:"themes"`
	Ranked        []RankedPost `json:"ranked"`
	WordCount     int          `json:"wordCount"`
	ProcessedAt   time.Time    `json:"processedAt"`
	OriginalInput string       `json:"originalInput"`
	Settings      Settings     `json:"settings"`
}

// ChatMessage is one turn of the editor conversation, kept only in the
// caller's state
type ChatMessage struct {
	Role            string `json:"role"`
	Content         string `json:"content"`
	ModifiedContent string `json:"modifiedContent,omitempty"`
}
