package assistant

import (
	"fmt"
	"strings"

	"github.com/mbarekayadi77-ship-it/MB-MEDICINE/internal/content"
)

// Fixed user-facing strings of the assistant, carried in every supported
// language. The prompt and the fallbacks follow the published site copy.

var greeting = content.LocalizedText{
	EN: "Institutional Greetings. I am Professor MB MedAI, Clinical Core v4.2. " +
		"I am synchronized with the 2026 global medical database. Please address me with " +
		"your exhaustive clinical or academic inquiry for a full evidence-based synthesis.",
	FR: "Salutations institutionnelles. Je suis le professeur MB MedAI, Clinical Core v4.2. " +
		"Je suis synchronisé avec la base de données médicale mondiale 2026. Veuillez me " +
		"contacter pour votre demande clinique ou académique exhaustive pour une synthèse " +
		"complète fondée sur des preuves.",
	AR: "تحيات مؤسسية. أنا البروفيسور MB MedAI، جوهر السريرية الإصدار 4.2. أنا متزامن مع " +
		"قاعدة البيانات الطبية العالمية لعام 2026. يرجى مخاطبتي باستفسارك السريري أو " +
		"الأكاديمي الشامل للحصول على تركيب كامل قائم على الأدلة.",
}

var connectionFailure = content.LocalizedText{
	EN: "Synchronization failure with clinical core terminal. Try PubMed or WHO directly.",
	FR: "Échec de synchronisation avec le terminal du cœur clinique. Essayez PubMed ou l'OMS directement.",
	AR: "فشل التزامن مع طرفية الجوهر السريري. جرّب PubMed أو منظمة الصحة العالمية مباشرة.",
}

var quotaNotice = content.LocalizedText{
	EN: "Institutional limit reached for Trial License. Please upgrade for continuous " +
		"Professor-level consulting.",
	FR: "Limite institutionnelle atteinte pour la licence d'essai. Veuillez mettre à niveau " +
		"pour une consultation continue au niveau du professeur.",
	AR: "تم الوصول إلى الحد المؤسسي لترخيص التجربة. يرجى الترقية للحصول على استشارات " +
		"مستمرة على مستوى البروفيسور.",
}

// emptyResponseFallback replaces an assistant reply the service returned
// with no usable text.
const emptyResponseFallback = "No structured clinical data retrieved."

// QuotaNotice is the localized message the UI shows on a plan-gate denial.
// Denials never enter the conversation log.
func QuotaNotice(lang content.Language) string {
	return quotaNotice.ForLanguage(lang)
}

// systemInstruction builds the inference system prompt for the active
// language.
func systemInstruction(lang content.Language) string {
	return fmt.Sprintf("You are MB Medical AI Assistant. Role: Senior Medical Research Specialist.\n"+
		"Tone: Academic, Precise, Institutional. Language: Respond in %s.\n"+
		"Output: Use structured Markdown. Include Symptoms, Biological Mechanisms, and Clinical Protocols.\n"+
		"Disclaimer: Information is from MB Medicine Scientific Archive for research purposes only.",
		strings.ToUpper(string(lang)))
}
