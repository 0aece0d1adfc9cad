// Package skills validates skill and spoken-language entries of a CV against fixed dictionaries.
package skills

// knownSkills spans tech, frameworks, tools, soft and business skills, and language names.
var knownSkills = []string{
	// languages and runtimes
	"javascript", "typescript", "python", "java", "golang", "rust", "kotlin", "swift",
	"php", "ruby", "scala", "c++", "c#", "sql", "html", "css", "bash", "node",
	// frameworks and libraries
	"react", "angular", "vue", "django", "flask", "spring", "laravel", "symfony",
	"express", "next.js", "tensorflow", "pytorch", "pandas", "spark", ".net",
	// data and infrastructure
	"postgresql", "mysql", "mongodb", "redis", "elasticsearch", "kafka", "docker",
	"kubernetes", "terraform", "ansible", "aws", "azure", "gcp", "linux", "git",
	"ci/cd", "jenkins", "graphql", "rest", "microservices", "machine learning",
	"data analysis", "cloud",
	// tools
	"excel", "powerpoint", "word", "office", "jira", "confluence", "figma",
	"photoshop", "illustrator", "indesign", "sketch", "salesforce", "sap",
	"tableau", "power bi", "hubspot", "autocad", "wordpress",
	// soft and business skills
	"communication", "leadership", "management", "teamwork", "negotiation",
	"project", "agile", "scrum", "marketing", "sales", "vente", "finance",
	"comptabilite", "accounting", "audit", "budget", "strategy", "strategie",
	"seo", "analyse", "analysis", "design", "recrutement", "recruitment",
	"customer", "client", "gestion", "organisation", "problem solving",
	"relation", "formation", "training",
	// language names
	"anglais", "english", "francais", "french", "allemand", "german",
	"espagnol", "spanish",
}

// exactSkills only match the whole entry; as substrings they would match almost anything.
var exactSkills = []string{"c", "r"}

// knownLanguages holds spoken-language names in English, French, German and native spelling.
var knownLanguages = []string{
	"english", "anglais", "englisch",
	"french", "francais", "franzosisch",
	"german", "allemand", "deutsch",
	"spanish", "espagnol", "spanisch", "espanol", "castellano",
	"italian", "italien", "italienisch", "italiano",
	"portuguese", "portugais", "portugiesisch", "portugues",
	"dutch", "neerlandais", "niederlandisch", "nederlands", "flemish", "flamand",
	"russian", "russe", "russisch", "русский",
	"chinese", "chinois", "chinesisch", "mandarin", "cantonese", "中文", "普通话",
	"japanese", "japonais", "japanisch", "日本語",
	"korean", "coreen", "koreanisch", "한국어",
	"arabic", "arabe", "arabisch", "العربية",
	"hindi", "हिन्दी",
	"turkish", "turc", "turkisch", "turkce",
	"polish", "polonais", "polnisch", "polski",
	"swedish", "suedois", "schwedisch", "svenska",
	"greek", "grec", "griechisch", "ελληνικα",
	"hebrew", "hebreu", "hebraisch", "עברית",
	"vietnamese", "vietnamien", "tieng viet",
}
