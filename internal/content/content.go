// Package content holds the text shown in landmark modals and the profile panel.
package content

import "manhattan-map/internal/landmark"

// Section is the modal body for one navigation target. Only some sections
// carry the optional blocks after Description.
type Section struct {
	Label           string
	Title           string
	Description     string
	LongDescription string
	Companies       []Company
	Contact         *ContactInfo
	MiscProjects    []MiscProject
	LinkText        string
	LinkHref        string
}

// Company is one employer in the projects section.
type Company struct {
	Name     string
	Role     string
	Period   string
	Projects []Project
}

// Project is a piece of work done at a company.
type Project struct {
	Title       string
	Description string
	Skills      []string
	Links       []Link
}

// Link is a labelled URL.
type Link struct {
	Label string
	URL   string
}

// ContactInfo lists the ways to get in touch.
type ContactInfo struct {
	Calendar      string
	BusinessEmail string
	PersonalEmail string
}

// MiscProject is a side project in the misc section.
type MiscProject struct {
	Name        string
	Description string
	SiteURL     string
	SiteLabel   string
	RepoURL     string
}

// Profile is the owner shown in the profile panel.
type Profile struct {
	Name        string
	PortraitAlt string
	LinkedIn    string
}

// Owner is the portfolio owner.
var Owner = Profile{
	Name:        "Adam",
	PortraitAlt: "Adam Ferguson, Ghibli-style portrait",
	LinkedIn:    "https://www.linkedin.com/in/adam-g-ferguson/",
}

// NavItem is an entry in the navigation panel.
type NavItem struct {
	Label  string
	Target string
}

// NavItems lists the navigation panel entries in display order.
var NavItems = []NavItem{
	{Label: "About", Target: "about"},
	{Label: "Projects", Target: "projects"},
	{Label: "Contact", Target: "contact"},
	{Label: "Misc.", Target: "misc"},
	{Label: "xG", Target: "xg"},
}

const aboutLong = `I started my career at EverQuote as a Quantitative Analyst, where I spent 2.5 years growing into a Senior Quantitative Analyst. I led data analytics for a new business unit that grew to 30% of the company's total revenue within a year.

From there, I moved through a series of progressively senior analytics roles: building star schema and data vault models at Koalafi, establishing the original data warehouse architecture at Unstoppable Domains, and engineering the analytics infrastructure at O Positiv, where I developed LTV prediction models that improved forecast precision by 75%.

In late 2024, I returned to EverQuote as a consultant to lead data engineering, analytics, and product management for a new initiative. I built the data architecture from scratch, set up all data reporting, developed SEM campaigns, and helped grow the initiative from $0 to $50k in daily profit.

That experience pushed me to build something of my own. In 2025, I co-founded Falcon Media, a full-stack digital marketing agency. As Co-Founder, I handle: legal, contracts, sales, account management, finances, landing pages, SEM, and analytics.

What defines me is a willingness to do whatever a project requires, even when it's outside my "scope." I've leaned into AI tools to accelerate this approach, using them to quickly get up to speed on unfamiliar domains. If something needs to get done, I figure it out.`

var companies = []Company{
	{
		Name:   "Falcon Media",
		Role:   "Co-Founder, CEO",
		Period: "2025 - Present",
		Projects: []Project{
			{
				Title:       "Lead Gen Website Portfolio",
				Description: "Five revenue-generating websites across insurance, personal loans, and banking verticals. Actively driving lead volume with full FTC compliance baked in from day one.",
				Skills:      []string{"React", "AI-Assisted Development", "Web Development", "Compliance"},
				Links: []Link{
					{Label: "quotefii.com", URL: "https://quotefii.com"},
					{Label: "loanmatchpartners.com", URL: "https://loanmatchpartners.com"},
					{Label: "loancomparisongroup.com", URL: "https://loancomparisongroup.com"},
					{Label: "brightpointpartners.com", URL: "https://brightpointpartners.com"},
					{Label: "checking.brightpointpartners.com", URL: "https://checking.brightpointpartners.com"},
				},
			},
			{
				Title:       "Data Pipeline & Warehouse",
				Description: "Full-stack attribution system tracking every lead from click to revenue. AWS Lambda event capture, PostgreSQL storage, and reverse ETL to Google Ads for offline conversion optimization.",
				Skills:      []string{"Python", "SQL", "AWS Lambda", "ETL/ELT", "Data Warehousing"},
			},
			{
				Title:       "Automated P&L Reporting",
				Description: "Daily profit reports delivered to Slack each morning with charts and brand-level breakdowns. Zero manual work required.",
				Skills:      []string{"Python", "SQL", "Data Visualization", "Automation", "Slack API"},
			},
			{
				Title:       "Google Ads Campaigns",
				Description: "Profitably managing five-figure monthly ad spend across auto insurance, personal loans, and healthcare. One of few agencies certified for pharmaceutical advertising on Google.",
				Skills:      []string{"Google Ads", "SEM", "Campaign Optimization", "Analytics"},
			},
			{
				Title:       "Partnership & Sales",
				Description: "5+ revenue-share partnerships sourced through cold outreach. All contract negotiations handled directly.",
				Skills:      []string{"Business Development", "Sales", "Contract Negotiation"},
			},
		},
	},
	{
		Name:   "EverQuote",
		Role:   "Consultant",
		Period: "2024 - 2025",
		Projects: []Project{
			{
				Title:       "Data Architecture",
				Description: "Designed the data architecture from scratch for a new business initiative, including warehousing, reporting pipelines, and analytics infrastructure that supported scaling to $50k/day in profit.",
				Skills:      []string{"SQL", "Data Warehousing", "ETL/ELT", "Data Analytics"},
			},
			{
				Title:       "Growth Initiative",
				Description: "Owned the full analytics-to-optimization loop for a new initiative that scaled from $0 to $50k in daily profit: data engineering, reporting, SEM campaigns, and product decisions.",
				Skills:      []string{"SEM", "Google Ads", "Analytics", "Product Management"},
			},
		},
	},
	{
		Name:   "O Positiv",
		Role:   "Senior Manager, Data & Analytics",
		Period: "2023 - 2024",
		Projects: []Project{
			{
				Title:       "Analytics Data Warehouse",
				Description: "Designed and built O Positiv's first data warehouse from scratch. Star schema architecture on Snowflake with Fivetran ingestion, Airflow orchestration, and DBT transformations.",
				Skills:      []string{"SQL", "DBT", "Snowflake", "Data Warehousing", "ETL/ELT"},
			},
			{
				Title:       "LTV Prediction Models",
				Description: "Built customer lifetime value prediction models across multiple methodologies. Improved 12- and 24-month forecast precision by 75%, directly informing acquisition spend decisions.",
				Skills:      []string{"Python", "Data Science", "Forecasting", "Analytics"},
			},
			{
				Title:       "Marketing Acquisition Dashboards",
				Description: "Built the company's first unified CAC and CPA dashboards, giving marketing real-time visibility into acquisition costs. Reduced weekly ad performance analysis by 8 hours.",
				Skills:      []string{"Data Visualization", "SQL", "Marketing Analytics", "Business Intelligence"},
			},
			{
				Title:       "A/B Testing Framework",
				Description: "Built a reusable statistical testing framework for the marketing team, automating significance calculations and result reporting. Cut per-test analysis time by 4 hours.",
				Skills:      []string{"Python", "A/B Testing", "Data Science", "Automation"},
			},
		},
	},
	{
		Name:   "Koalafi",
		Role:   "Manager of Sales Analytics",
		Period: "2021 - 2022",
		Projects: []Project{
			{
				Title:       "Star Schema & Data Vault Models",
				Description: "Designed star schema and data vault models in partnership with data engineering, built on Snowflake with DBT transformations and GitLab version control.",
				Skills:      []string{"SQL", "DBT", "Snowflake", "Data Warehousing"},
			},
			{
				Title:       "C-Suite Sales Analytics",
				Description: "Owned weekly sales analytics for C-suite leadership, covering pipeline velocity, conversion rates, and revenue forecasts that informed go-to-market strategy.",
				Skills:      []string{"Data Visualization", "Business Intelligence", "Analytics"},
			},
			{
				Title:       "Automated Reporting Dashboards",
				Description: "Automated the weekly sales reporting workflow with Python pipelines feeding into Tableau dashboards. Saved 4 hours per week of manual reporting.",
				Skills:      []string{"Python", "Tableau", "Automation", "Data Visualization"},
			},
			{
				Title:       "Revenue Forecasting",
				Description: "Built the 2022 annual revenue forecast and monthly commission payout models, used for financial planning and sales compensation across the organization.",
				Skills:      []string{"SQL", "Excel", "Forecasting", "Financial Modeling"},
			},
		},
	},
	{
		Name:   "EverQuote",
		Role:   "Sr. Quantitative Analyst",
		Period: "2018 - 2020",
		Projects: []Project{
			{
				Title:       "New Business Unit Analytics",
				Description: "Built the analytics infrastructure and drove data-informed decisions for a new business unit from launch. The unit grew to 30% of EverQuote's total revenue within its first 12 months.",
				Skills:      []string{"SQL", "Data Analytics", "Business Intelligence"},
			},
			{
				Title:       "Multi-Arm Bandit A/B Testing",
				Description: "Implemented data science model to automate A/B testing. Improved daily profit by 20% and reduced manual test monitoring by 5 hours per week.",
				Skills:      []string{"Python", "Data Science", "A/B Testing", "Automation"},
			},
		},
	},
}

var sections = map[string]Section{
	"about": {
		Label:           "About",
		Title:           "About Me",
		Description:     "I'm a full-stack analytics leader turned entrepreneur, currently running Falcon Media, a digital marketing agency I co-founded. I've built data warehouses from scratch at multiple startups, led initiatives from $0 to $50k in daily profit, and now handle everything from sales to SEM as a founder. I thrive when the work requires wearing many hats.",
		LongDescription: aboutLong,
		LinkText:        "LinkedIn",
		LinkHref:        Owner.LinkedIn,
	},
	"projects": {
		Label:       "Projects",
		Title:       "My Projects",
		Description: "Projects I've built and shipped across data infrastructure, web products, and growth.",
		Companies:   companies,
	},
	"contact": {
		Label:       "Contact",
		Title:       "Get in Touch",
		Description: "I'm always happy to connect. Whether it's about a role, a consulting opportunity, or a Falcon Media partnership, feel free to reach out.",
		Contact: &ContactInfo{
			Calendar:      "https://calendly.com/adam-falconmedia/30min",
			BusinessEmail: "adam@falconmedia.group",
			PersonalEmail: "adam.ferguson06@gmail.com",
		},
		LinkText: "Schedule a Meeting with Me",
		LinkHref: "https://calendly.com/adam-falconmedia/30min",
	},
	"misc": {
		Label:       "Misc",
		Title:       "Miscellaneous",
		Description: "A collection of experiments, side projects, and other creative endeavors that don't fit neatly into other categories.",
		MiscProjects: []MiscProject{
			{
				Name:        "Catan Board Setup",
				Description: "Built on Christmas Eve because I got tired of arguing over whether the board was set up fairly. 50 pre-generated, rules-compliant layouts. Just hit shuffle and start playing.",
				SiteURL:     "https://catanboardsetup.com/",
				SiteLabel:   "CatanBoardSetup.com",
				RepoURL:     "https://github.com/AdamFerguson06/catan-board-setup",
			},
		},
	},
	"xg": {
		Label:       "xG",
		Title:       "xG Analytics",
		Description: "Dive into expected goals (xG) analysis and football statistics. Data-driven insights into the beautiful game.",
		LinkText:    "View xG Stats",
		LinkHref:    "#xg",
	},
}

// ForTarget returns the section registered for a navigation target.
func ForTarget(target string) (Section, bool) {
	s, ok := sections[target]
	return s, ok
}

// ForLandmark returns the modal content for a landmark. Landmarks without a
// known navigation target fall back to their own title.
func ForLandmark(l landmark.Landmark) Section {
	if s, ok := sections[l.NavTarget]; ok {
		return s
	}
	return Section{
		Label:    "Landmark",
		Title:    l.Title,
		LinkText: "Read More",
		LinkHref: l.WikiURL,
	}
}
