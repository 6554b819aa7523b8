// Package knowledge holds the reference safety content: emergency
// helplines, Indian safety laws and the readable knowledge modules.
package knowledge

import (
	"errors"
	"fmt"
)

// EmergencyContact is one helpline entry.
type EmergencyContact struct {
	Name        string `json:"name"`
	Number      string `json:"number"`
	Description string `json:"description"`
	Available   string `json:"available"`
}

// SafetyLaw is one legal protection with a plain-language summary.
type SafetyLaw struct {
	ID          string `json:"id"`
	Title       string `json:"title"`
	Section     string `json:"section"`
	Description string `json:"description"`
	Punishment  string `json:"punishment"`
	Example     string `json:"example"`
	Category    string `json:"category"`
}

// Module is one readable knowledge module. Laws references SafetyLaw
// IDs.
type Module struct {
	ID      string   `json:"id"`
	Title   string   `json:"title"`
	Icon    string   `json:"icon"`
	Summary string   `json:"summary"`
	Content []string `json:"content"`
	Laws    []string `json:"laws"`
	Tips    []string `json:"tips"`
}

// ErrModuleNotFound is returned for an unknown module ID.
var ErrModuleNotFound = errors.New("knowledge: module not found")

// ModuleByID returns a seeded module.
func ModuleByID(id string) (Module, error) {
	for _, m := range Modules() {
		if m.ID == id {
			return m, nil
		}
	}
	return Module{}, fmt.Errorf("%w: %q", ErrModuleNotFound, id)
}

// LawByID returns a seeded law.
func LawByID(id string) (SafetyLaw, bool) {
	for _, l := range Laws() {
		if l.ID == id {
			return l, true
		}
	}
	return SafetyLaw{}, false
}

// Contacts returns the helpline directory.
func Contacts() []EmergencyContact {
	return []EmergencyContact{
		{Name: "Emergency Services", Number: "112", Description: "All-India emergency number (police, fire, ambulance)", Available: "24/7"},
		{Name: "Women Helpline", Number: "181", Description: "Women in distress helpline", Available: "24/7"},
		{Name: "Women in Distress", Number: "1091", Description: "Police women helpline", Available: "24/7"},
		{Name: "Cyber Crime Helpline", Number: "1930", Description: "Report online harassment, stalking, fraud", Available: "24/7"},
		{Name: "Domestic Violence", Number: "181", Description: "National Commission for Women", Available: "24/7"},
		{Name: "Child Helpline", Number: "1098", Description: "For children in distress (under 18)", Available: "24/7"},
	}
}

// Laws returns the safety law reference list.
func Laws() []SafetyLaw {
	return []SafetyLaw{
		{
			ID:          "ipc-354",
			Title:       "Assault on Women",
			Section:     "IPC Section 354",
			Description: "Assault or criminal force to woman with intent to outrage her modesty.",
			Punishment:  "Imprisonment of not less than 1 year, may extend to 5 years, and fine.",
			Example:     "Unwanted physical contact, grabbing, pushing in public transport.",
			Category:    "Physical Safety",
		},
		{
			ID:          "ipc-354a",
			Title:       "Sexual Harassment",
			Section:     "IPC Section 354A",
			Description: "Physical contact and advances involving unwelcome and explicit sexual overtures; demand for sexual favours; showing pornography; making sexually coloured remarks.",
			Punishment:  "Up to 3 years imprisonment and/or fine.",
			Example:     "Workplace comments about appearance, unwanted advances, inappropriate jokes.",
			Category:    "Workplace Safety",
		},
		{
			ID:          "ipc-354d",
			Title:       "Stalking",
			Section:     "IPC Section 354D",
			Description: "Following a woman, attempting to contact despite clear disinterest, monitoring online activity.",
			Punishment:  "First offense: up to 3 years. Repeat offense: up to 5 years.",
			Example:     "Being followed home, repeated unwanted messages, monitoring social media.",
			Category:    "Online Safety",
		},
		{
			ID:          "ipc-354c",
			Title:       "Voyeurism",
			Section:     "IPC Section 354C",
			Description: "Watching or capturing images of a woman in private acts without consent.",
			Punishment:  "First offense: 1-3 years. Repeat: 3-7 years.",
			Example:     "Hidden cameras, non-consensual photography.",
			Category:    "Online Safety",
		},
		{
			ID:          "ipc-509",
			Title:       "Insult to Modesty",
			Section:     "IPC Section 509",
			Description: "Word, gesture or act intended to insult the modesty of a woman.",
			Punishment:  "Imprisonment up to 3 years and fine.",
			Example:     "Cat-calling, obscene gestures, verbal harassment in public spaces.",
			Category:    "Public Safety",
		},
		{
			ID:          "posh-act",
			Title:       "POSH Act, 2013",
			Section:     "Sexual Harassment of Women at Workplace Act",
			Description: "Prevention, prohibition and redressal of sexual harassment at workplace. Mandates ICC in organizations with 10+ employees.",
			Punishment:  "As recommended by ICC: written apology, warning, withholding promotion, termination, deduction from salary.",
			Example:     "Quid pro quo, hostile work environment, inappropriate comments by colleagues or superiors.",
			Category:    "Workplace Safety",
		},
		{
			ID:          "it-act-67",
			Title:       "Cyber Offenses",
			Section:     "IT Act Section 67",
			Description: "Publishing or transmitting obscene material in electronic form.",
			Punishment:  "First conviction: up to 3 years and ₹5 lakh fine. Subsequent: up to 5 years and ₹10 lakh fine.",
			Example:     "Sharing intimate images without consent, online obscenity.",
			Category:    "Online Safety",
		},
		{
			ID:          "dv-act",
			Title:       "Domestic Violence Protection",
			Section:     "Protection of Women from Domestic Violence Act, 2005",
			Description: "Protects women from physical, emotional, sexual, verbal, and economic abuse by family members or partners.",
			Punishment:  "Protection orders, residence orders, monetary relief, custody orders. Breach is punishable with 1 year imprisonment and/or ₹20,000 fine.",
			Example:     "Physical abuse by partner, economic deprivation, emotional abuse, controlling behavior.",
			Category:    "Domestic Safety",
		},
	}
}

// Modules returns the readable knowledge modules.
func Modules() []Module {
	return []Module{
		{
			ID:      "transport-safety",
			Title:   "Transport Safety",
			Icon:    "🚌",
			Summary: "Stay safe while commuting via bus, train, auto, or cab in Indian cities.",
			Content: []string{
				"Always use app-based rides where the driver's identity and route are tracked.",
				"Verify vehicle number, driver photo, and driver name before boarding.",
				"Share your live location with a trusted contact for every ride.",
				"Ask the driver to tell you YOUR name. Never share it first.",
				"Sit behind the driver in cabs for easier exit.",
				"In buses and trains, stay near other women or families when possible.",
				"Trust your instincts. If something feels wrong, exit at a safe, populated area.",
				"Keep emergency numbers saved and accessible: 112, 181, 1091.",
			},
			Laws: []string{"ipc-354", "ipc-354d"},
			Tips: []string{
				"Save your regular routes on GPS for quick comparison if a driver deviates.",
				"Keep your phone charged before traveling. Carry a power bank.",
				"Identify well-lit, populated landmarks along your regular routes.",
			},
		},
		{
			ID:      "workplace-safety",
			Title:   "Workplace Safety",
			Icon:    "🏢",
			Summary: "Know your rights against workplace harassment under the POSH Act.",
			Content: []string{
				"The POSH Act 2013 makes it mandatory for every organization with 10+ employees to have an Internal Complaints Committee (ICC).",
				"Sexual harassment at work includes physical contact, sexual advances, sexually colored remarks, showing pornography, and any unwelcome sexual behavior.",
				"You can file a complaint with the ICC within 3 months of the incident (extendable to 6 months).",
				"Your identity will be kept confidential throughout the process.",
				"The ICC must complete the inquiry within 90 days.",
				"If your organization lacks an ICC, you can approach the Local Complaints Committee (LCC) set up by the District Officer.",
				"Retaliation for filing a complaint is itself a violation.",
				"You can request interim measures like transfer of the respondent during the inquiry.",
			},
			Laws: []string{"ipc-354a", "posh-act"},
			Tips: []string{
				"Document every incident with date, time, location, witnesses, and exact details.",
				"Save all messages, emails, and screenshots as evidence.",
				"Identify trusted colleagues who can serve as witnesses.",
				"Know your ICC members. Their names should be displayed in the workplace.",
			},
		},
		{
			ID:      "online-safety",
			Title:   "Online Safety",
			Icon:    "🔐",
			Summary: "Protect yourself from cyberstalking, online harassment, and digital threats.",
			Content: []string{
				"Set all social media profiles to private and review who can see your posts.",
				"Enable two-factor authentication on all accounts.",
				"Be cautious about sharing location in real-time on social media.",
				"Don't accept friend requests from people you don't know in real life.",
				"Cyberstalking, such as monitoring someone online, creating fake profiles, or repeated messaging, is a crime under IPC 354D.",
				"Non-consensual sharing of intimate images is punishable under IT Act Section 67.",
				"File cyber complaints at cybercrime.gov.in or call 1930.",
				"Regularly audit your digital footprint. Google yourself to see what's publicly accessible.",
			},
			Laws: []string{"ipc-354d", "ipc-354c", "it-act-67"},
			Tips: []string{
				"Use different passwords for different platforms.",
				"Review app permissions regularly. Remove location access from unnecessary apps.",
				"Be wary of phishing messages disguised as job offers or prize notifications.",
				"If you receive threats online, do not delete the messages. They are evidence.",
			},
		},
		{
			ID:      "domestic-safety",
			Title:   "Domestic Safety",
			Icon:    "🏠",
			Summary: "Understanding domestic violence laws and how to seek help safely.",
			Content: []string{
				"The Protection of Women from Domestic Violence Act, 2005 covers physical, emotional, sexual, verbal, and economic abuse.",
				"Domestic violence includes threats, humiliation, controlling behavior, and denying financial resources.",
				"You can file a complaint with a Protection Officer, police, or magistrate.",
				"You have the right to reside in the shared household. You cannot be evicted.",
				"Protection orders can prevent the abuser from contacting or approaching you.",
				"Monetary relief can be granted for expenses, medical costs, and loss of earnings.",
				"SHE-Box (sheboxonline.wcd.nic.in) provides an online complaint system.",
				"NGOs like Women's Helpline (181) provide counseling and legal support.",
			},
			Laws: []string{"dv-act", "ipc-354"},
			Tips: []string{
				"Keep important documents (ID, bank details) in a safe place or with a trusted person.",
				"Have an emergency exit plan with a trusted friend or family member.",
				"Save helpline numbers in a discreet way on your phone.",
				"Remember: seeking help is a sign of strength, not weakness.",
			},
		},
		{
			ID:      "public-space-safety",
			Title:   "Public Space Safety",
			Icon:    "🌆",
			Summary: "Handle harassment in public spaces: streets, markets, events.",
			Content: []string{
				"Eve-teasing, cat-calling, and obscene gestures are criminal offenses under IPC 509.",
				"You have the right to file an FIR at any police station. They cannot refuse (Section 154 CrPC).",
				"If police refuse to file an FIR, you can approach the Superintendent of Police or file a complaint through the court.",
				"Malls, public transport, and events must have CCTV and complaint mechanisms.",
				"Many cities have women-only helpline numbers and women police stations.",
				"You can use safety apps that send SOS alerts with your location to emergency contacts.",
				"Self-defense is a legal right. Section 96-106 IPC provides the right to private defense.",
				"Bystander intervention: it's everyone's responsibility to speak up against harassment.",
			},
			Laws: []string{"ipc-509", "ipc-354"},
			Tips: []string{
				"Walk confidently and stay aware of your surroundings.",
				"Identify safe spots along your regular routes: police stations, hospitals, 24/7 shops.",
				"Trust your instincts. If a situation feels wrong, move to a crowded area.",
				"Carry a fully charged phone and portable charger.",
			},
		},
	}
}
