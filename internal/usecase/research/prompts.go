package research

import "github.com/tmc/langchaingo/prompts"

const (
	toolExtractionSystem = "You are a tech researcher. Extract specific tool, library, platform, or service names from articles. " +
		"Focus on actual products developers can use, not general concepts or features."

	toolAnalysisSystem = "You are analyzing developer tools and programming technologies. " +
		"Focus on information relevant to programmers and software developers. " +
		"Pay special attention to programming languages, frameworks, APIs, SDKs, and development workflows."

	recommendationsSystem = "You are a senior software engineer providing quick, concise tech recommendations. " +
		"Keep responses brief and actionable, maximum 3-4 sentences total."

	reportSystem = "You are a technical writer creating comprehensive reports for developers. " +
		"Provide detailed, well-structured analysis with clear sections and actionable insights."

	comparisonMatrixSystem = "You are creating a structured comparison matrix for developer tools. " +
		"Focus on key decision-making criteria that developers care about."
)

var toolExtractionPrompt = prompts.NewPromptTemplate(
	`Query: {query}
Article Content: {content}

Extract a list of specific tool/service names mentioned in this content that are relevant to "{query}".

Rules:
- Only include actual product names, not generic terms
- Focus on tools developers can directly use
- Include both open source and commercial options
- Limit to the 5 most relevant tools
- Return just the tool names, one per line, no descriptions`,
	[]string{"query", "content"},
)

var toolAnalysisPrompt = prompts.NewPromptTemplate(
	`Company/Tool: {name}
Website Content: {content}

Analyze this content from a developer's perspective and return a JSON object with:
- name: the tool name
- description: brief 1-sentence description of what this tool does for developers
- website: the official site if mentioned
- pricing_model: one of "Free", "Freemium", "Paid", "Enterprise", or "Unknown"
- is_open_source: true if open source, false if proprietary, null if unclear
- api_available: true if a REST API, GraphQL, SDK, or programmatic access is mentioned, null if unclear
- tech_stack: list of frameworks, databases, APIs, or technologies supported or used
- language_support: list of programming languages explicitly supported
- integration_capabilities: list of tools or platforms it integrates with
- trend_status: one of "Rising", "Stable", "Declining", "Hot", "Emerging"
- popularity_score: integer 1-10 based on community mentions and adoption signals
- community_activity: "High", "Medium", or "Low"
- recent_updates: "Recent", "Moderate", or "Stale" based on update frequency
- market_position: "Leader", "Challenger", "Niche", or "New"

Focus on developer-relevant features like APIs, SDKs, language support, and integrations.`,
	[]string{"name", "content"},
)

var recommendationsPrompt = prompts.NewPromptTemplate(
	`Developer Query: {query}
Tools/Technologies Analyzed: {tools}

Provide a brief recommendation (3-4 sentences max) covering:
- Which tool is best and why
- Key cost/pricing consideration
- Main technical advantage

Be concise and direct, no long explanations needed.`,
	[]string{"query", "tools"},
)

var reportPrompt = prompts.NewPromptTemplate(
	`Developer Query: {query}
Tools/Technologies Analyzed: {tools}

Create a comprehensive Markdown report with the following sections:

1. **Executive Summary** (2-3 sentences)
2. **Tool Comparison Table** (pricing, open source status, key features)
3. **Detailed Analysis** (pros/cons for each tool)
4. **Recommendations** (ranked by different use cases)
5. **Implementation Considerations** (getting started tips)

Focus on practical developer needs and real-world usage scenarios.`,
	[]string{"query", "tools"},
)

var comparisonMatrixPrompt = prompts.NewPromptTemplate(
	`Developer Query: {query}
Tools/Technologies Analyzed: {tools}

Create a comparison matrix as a JSON object with keys "tools" (list of tool
names), "categories" (list of category names), and "matrix" (object mapping
tool name to an object mapping category to a short string value).

Use these categories:
- Pricing Model (Free/Freemium/Paid/Enterprise)
- Open Source (Yes/No/Partial)
- API Available (Yes/No)
- Language Support (top 3 languages)
- Learning Curve (Easy/Medium/Hard)
- Community Size (Small/Medium/Large)
- Documentation Quality (Poor/Good/Excellent)
- Integration Capabilities (Limited/Moderate/Extensive)`,
	[]string{"query", "tools"},
)
