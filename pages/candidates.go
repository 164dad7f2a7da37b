package pages

// candidate is one alternative markup variant in a prioritized fallback search.
type candidate struct {
	description string
	selector    string
}

// Candidate tables are evaluated strictly in order, the first match wins.

var challengeCandidates = []candidate{
	{"challenge iframe", "iframe[title*='challenge']"},
	{"verification iframe", "iframe[title*='verify']"},
	{"captcha iframe", "iframe[src*='captcha']"},
	{"recaptcha iframe", "iframe[src*='recaptcha']"},
	{"challenge stage", "#challenge-stage"},
	{"challenge running", "#challenge-running"},
}

var cookieCandidates = []candidate{
	{"onetrust accept", "button[id*='onetrust-accept']"},
	{"generic cookie accept", "button[id*='cookie-accept']"},
	{"accept label", "[aria-label*='Accept']"},
	{"accept text", "button:has-text('Accept')"},
	{"cookie consent", ".cookie-consent button"},
	{"onetrust handler", "#onetrust-accept-btn-handler"},
}

var readinessCandidates = []candidate{
	// Generic search markup
	{"search input", "input[type='search']"},
	{"search placeholder", "input[placeholder*='search']"},
	{"Search placeholder", "input[placeholder*='Search']"},
	{"keyword placeholder", "input[placeholder*='keyword']"},
	{"Keyword placeholder", "input[placeholder*='Keyword']"},
	// Site specific markup
	{"job search filter form", "#jobSearchFilterForm"},
	{"recruitment search", ".recruitment-search"},
	{"job search", ".job-search"},
	{"job search form action", "form[action*='job-search']"},
	{"sticky header", ".top-navigation--epam-sticky"},
	{"job search class", "[class*='job-search']"},
	{"search form class", "[class*='search-form']"},
	{"search form", ".search-form"},
	{"job search wrapper", ".job-search__wrapper"},
}
