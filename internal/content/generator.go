package content

import (
	"fmt"
	"strings"
)

// The corpus is generated deterministically: every clinical domain gets one
// volume per topic, with section templates expanded per language. Two calls
// to GenerateCorpus always produce identical articles.

const (
	corpusAuthor      = "MB Medicine Institutional Academic Board"
	corpusDate        = "2026-05-20"
	topicsPerCategory = 16
	freePerCategory   = 3
)

var volumeTopics = []string{
	"Advanced Pathological Mapping",
	"Therapeutic Interventions",
	"Radiological Correlations",
	"Surgical Frameworks",
	"Pharmacological Pathways",
	"Diagnostic Logic",
	"Emergency Protocols",
	"Public Health Impact",
	"Ethical Case Studies",
	"Clinical Trials 2026",
	"Imaging Standards",
	"Nursing Care Models",
	"Neonatal Management",
	"Geriatric Specializations",
	"Preventive Strategies",
	"Interdisciplinary Research",
}

var sectionHeadings = map[Language][]string{
	LanguageEN: {
		"Introduction & Clinical Definition", "Pathophysiology & Molecular Mechanisms",
		"Epidemiology & Global Prevalence", "Etiology & Multi-factorial Causes",
		"Risk Factors & Comorbidities", "Clinical Manifestations & Symptomatology",
		"Diagnostic Framework & Advanced Investigations", "Differential Diagnosis & Clinical Reasoning",
		"Pharmacological & Therapeutic Protocols", "Surgical Management & Technical Procedures",
		"Nursing Care & Perioperative Management", "Complications & Prognostic Factors",
		"Preventive Medicine & Long-term Prophylaxis", "Ethics & Legal Medicine Implications",
		"References & Peer-Reviewed Sources",
	},
	LanguageFR: {
		"Introduction et Définition Clinique", "Physiopathologie et Mécanismes Moléculaires",
		"Épidémiologie et Prévalence Mondiale", "Étiologie et Causes Multifactorielles",
		"Facteurs de Risque et Comorbidités", "Manifestations Cliniques et Symptomatologie",
		"Cadre Diagnostique et Investigations Avancées", "Diagnostic Différentiel et Raisonnement Clinique",
		"Protocoles Pharmacologiques et Thérapeutiques", "Gestion Chirurgicale et Procédures Techniques",
		"Soins Infirmiers et Gestion Périopératoire", "Complications et Facteurs Pronostics",
		"Médecine Préventive et Prophylaxie à Long Terme", "Implications en Éthique et Médecine Légale",
		"Références et Sources Évaluées par les Pairs",
	},
	LanguageAR: {
		"المقدمة والتعريف السريري", "الفيزيولوجيا المرضية والآليات الجزيئية",
		"الوبائيات والانتشار العالمي", "المسببات والعوامل المتعددة",
		"عوامل الخطر والأمراض المصاحبة", "المظاهر السريرية والأعراض",
		"الإطار التشخيصي والفحوصات المتقدمة", "التشخيص التفريقي والاستدلال السريري",
		"البروتوكولات الدوائية والعلاجية", "الإدارة الجراحية والإجراءات التقنية",
		"الرعاية التمريضية والإدارة قبل وبعد الجراحة", "المضاعفات وعوامل الإنذار",
		"الطب الوقائي والوقاية طويلة الأمد", "الآثار المترتبة على أخلاقيات الطب والقانون",
		"المراجع والمصادر المحكمة",
	},
}

var categoryFocus = map[Category]string{
	CategorySurgery:      "Technical operative maneuvers and robotic-assisted precision.",
	CategoryPharmacology: "Molecular binding affinities and pharmacokinetic profiles.",
	CategoryPediatrics:   "Developmental milestones and neonatal physiological variations.",
	CategoryCardiology:   "Hemodynamic monitoring and electrophysiological mapping.",
}

const defaultFocus = "Evidence-based clinical guidelines and multi-institutional data."

// GenerateCorpus builds the full article corpus: one exhaustive clinical
// volume per domain and topic, the first three volumes of each domain free
// and the rest premium.
func GenerateCorpus() []Article {
	articles := make([]Article, 0, len(Categories)*topicsPerCategory)
	for dIdx, category := range Categories {
		for i := 1; i <= topicsPerCategory; i++ {
			base := fmt.Sprintf("%s v%d.4.2", volumeTopics[i-1], i)
			articles = append(articles, Article{
				ID:       fmt.Sprintf("v-%d-%d", dIdx, i),
				Category: category,
				Premium:  i > freePerCategory,
				Author:   corpusAuthor,
				Date:     corpusDate,
				Tags: []string{
					category.Tag(), "2026-academic", "exhaustive-volume", "clinical-authority",
				},
				Title: LocalizedText{
					EN: fmt.Sprintf("%s: Exhaustive Clinical Volume - %s", category, base),
					FR: fmt.Sprintf("%s: Volume Clinique Exhaustif - %s", category, base),
					AR: fmt.Sprintf("%s: المجلد السريري الشامل - %s", category, base),
				},
				Body: LocalizedText{
					EN: academicBody(base, LanguageEN, category),
					FR: academicBody(base, LanguageFR, category),
					AR: academicBody(base, LanguageAR, category),
				},
			})
		}
	}
	return articles
}

// academicBody expands the fixed section template for one volume. Section
// headings are localized; the prose body follows the institutional English
// template for every language, matching the published corpus.
func academicBody(title string, lang Language, category Category) string {
	focus, ok := categoryFocus[category]
	if !ok {
		focus = defaultFocus
	}

	var b strings.Builder
	for _, heading := range sectionHeadings[lang] {
		fmt.Fprintf(&b, "### %s\n\n", heading)
		fmt.Fprintf(&b,
			"This academic analysis represents the definitive 2026 reference for %s. "+
				"Regarding %s, our institutional research emphasizes %s\n\n",
			title, strings.ToLower(heading), focus)
		b.WriteString(
			"Data points are derived from real-time synchronization with the World Health " +
				"Organization (WHO), the New England Journal of Medicine (NEJM), and PubMed " +
				"Central. No summaries are provided; instead, we offer exhaustive technical " +
				"specifications including molecular pathways, precise pharmacological dosages, " +
				"and multi-stage surgical protocols.\n\n")
		fmt.Fprintf(&b,
			"Further analysis of %s in the context of %s reveals deep layers of clinical "+
				"complexity. The 2026 updates include longitudinal studies from the MB Medical "+
				"Institutional Group, showing a 15%% increase in diagnostic accuracy when these "+
				"protocols are followed strictly.\n\n",
			title, heading)
	}
	return strings.TrimSpace(b.String())
}
