package llm

// prompt templates for the pipeline stages, interpolated with fmt or
// strings.Replacer at call sites

const extractThemesPrompt = `You are a senior content strategist and expert analyst. Extract 3-5 standalone, high-value themes from this content.

CRITICAL REQUIREMENTS:
- Extract ACTUAL specific insights from the content, not generic placeholders
- For "why_it_spreads", be nuanced and human - explain the psychological hooks, emotional triggers, or practical value
- For "key_insights", extract REAL insights found in the text, not placeholder text
- Make titles compelling and benefit-driven
- Focus on concrete examples, data points, and specific insights from the content

Return ONLY valid JSON:
{
  "themes": [
    {
      "theme_id": "specific-theme-from-content",
      "title": "8-14 word compelling headline that highlights a specific benefit or insight",
      "summary": "2-3 sentences max with concrete insights from the content",
      "importance_score": 1-10,
      "why_it_spreads": "Nuanced explanation of psychological appeal",
      "key_insights": ["Specific insight 1 from content", "Specific insight 2 from content", "Specific insight 3 from content"]
    }
  ]
}`

const extractThemesSystem = "You are a senior content strategist. Extract high-value themes from content and return ONLY valid JSON. " +
	"Focus on the main content and ignore navigation, headers, footers, and repetitive elements. " +
	"Be specific and nuanced in your analysis. Extract actual insights, not generic placeholders."

const generateAssetsPrompt = `You are a world-class marketer and copywriter. Using the theme below, create complete, ready-to-use platform versions for the SELECTED PLATFORMS ONLY.

CONTEXT/TONE GUIDELINES: {tone}

Theme: {title}
Summary: {summary}
Key Insights: {key_insights}

SELECTED PLATFORMS TO GENERATE: {selectedPlatforms}

CRITICAL REQUIREMENTS:
- DO NOT use generic placeholder text like "Main point extracted from content"
- Extract and use ACTUAL specific insights from the provided theme information
- Make content compelling, specific, and valuable
- ONLY generate content for the platforms specified in SELECTED PLATFORMS
- Create complete, ready-to-use content pieces
- Ensure all content is properly formatted without HTML entities
- Use proper spacing and paragraph breaks for readability.
- Include 3-5 relevant hashtags at the end of the post (except for Email).

Return ONLY valid JSON with content for ONLY the selected platforms. Available platform keys:
- linkedin_post: For LinkedIn platform
- x_thread: For Twitter/X platform (as array of tweets)
- instagram_post: For Instagram platform
- short_blog: For blog platform
- email: For newsletter/email platform (format: "Subject: ...\n\nBody: ...")
- youtube_script: For YouTube platform
- carousel: For carousel/slide format (format: "Slide 1: ...\n---\nSlide 2: ...")`

const rankAssetsPrompt = `Rank these {n} generated posts by predicted viral performance (1-100).

Factors: hook quality, emotional appeal, specificity, value provided, platform optimization.

Return sorted JSON array:
[
  {
    "rank": 1,
    "platform": "LinkedIn",
    "score": 96,
    "reason": "Strong hook + specific value proposition",
    "preview": "First 120 chars..."
  }
]`

const rankAssetsSystem = "You are a content performance analyst. Rank content by viral potential and return ONLY valid JSON."
