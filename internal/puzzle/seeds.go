package puzzle

// SeedPuzzles returns the built-in puzzle definitions.
func SeedPuzzles() []*Puzzle {
	return []*Puzzle{
		{
			ID:           "safety-tools-matching",
			Title:        "Safety Tools Match",
			Description:  "Match each safety situation with the correct action or tool to use.",
			Icon:         "🧩",
			Type:         TypeMatching,
			Difficulty:   "beginner",
			MaxScore:     60,
			TimeLimitSec: 90,
			MatchPairs: []MatchPair{
				{ID: "m1", Item: "Stalking or being followed", Match: "Call 112 & enter a crowded place"},
				{ID: "m2", Item: "Workplace sexual harassment", Match: "File complaint with ICC (POSH Act)"},
				{ID: "m3", Item: "Receiving obscene messages online", Match: "Report under IT Act Section 67"},
				{ID: "m4", Item: "Domestic violence at home", Match: "Call 181 Women Helpline"},
				{ID: "m5", Item: "Unsafe auto-rickshaw ride", Match: "Share live location & note plate number"},
				{ID: "m6", Item: "Someone takes photos without consent", Match: "Report under IPC Section 354C (Voyeurism)"},
			},
		},
		{
			ID:          "transport-red-flags",
			Title:       "Transport Red Flags",
			Description: "Identify which situations are red flags during public transport travel.",
			Icon:        "🚩",
			Type:        TypeRedFlag,
			Difficulty:  "beginner",
			MaxScore:    80,
			RedFlags: []RedFlag{
				{ID: "rf1", Text: "Driver takes a different route than shown on GPS", IsRedFlag: true, Explanation: "Route deviation is a major red flag. Always monitor your route on GPS and speak up immediately."},
				{ID: "rf2", Text: "Driver asks you to confirm your name first", IsRedFlag: true, Explanation: "The driver should tell YOU the passenger name. If they ask first, they might not be your assigned driver."},
				{ID: "rf3", Text: "Vehicle number matches the app booking", IsRedFlag: false, Explanation: "A matching vehicle number is a good sign. Always verify this before getting in."},
				{ID: "rf4", Text: "Auto-rickshaw has no visible registration plate", IsRedFlag: true, Explanation: "Missing or covered registration plates are serious red flags. Never board such vehicles."},
				{ID: "rf5", Text: "Driver has their ID card displayed on the dashboard", IsRedFlag: false, Explanation: "A visible driver ID is a positive safety indicator."},
				{ID: "rf6", Text: "The driver insists on not using the meter", IsRedFlag: true, Explanation: "Refusing to use the meter is suspicious and may indicate an unlicensed driver."},
				{ID: "rf7", Text: "Driver offers to take a \"shortcut\" through isolated lanes", IsRedFlag: true, Explanation: "Shortcuts through deserted areas, especially at night, are red flags. Insist on main roads."},
				{ID: "rf8", Text: "You share your live location with a trusted contact", IsRedFlag: false, Explanation: "Sharing live location is one of the best safety practices for any commute."},
			},
		},
		{
			ID:           "workplace-rights-matching",
			Title:        "Know Your Workplace Rights",
			Description:  "Match workplace situations with the correct legal protection or action.",
			Icon:         "⚖️",
			Type:         TypeMatching,
			Difficulty:   "intermediate",
			MaxScore:     60,
			TimeLimitSec: 120,
			MatchPairs: []MatchPair{
				{ID: "w1", Item: "Unwanted physical contact by a colleague", Match: "IPC Section 354 (Criminal Force)"},
				{ID: "w2", Item: "Sexually suggestive remarks in office", Match: "IPC Section 354A (Sexual Harassment)"},
				{ID: "w3", Item: "Employer retaliates after harassment complaint", Match: "POSH Act protection against victimization"},
				{ID: "w4", Item: "No Internal Complaints Committee at company", Match: "Approach Local Complaints Committee (LCC)"},
				{ID: "w5", Item: "Insult to modesty of a woman", Match: "IPC Section 509"},
				{ID: "w6", Item: "Demand for sexual favours for promotion", Match: "Quid pro quo harassment under POSH Act"},
			},
		},
		{
			ID:          "online-safety-red-flags",
			Title:       "Online Safety Check",
			Description: "Spot the red flags in online interactions and digital safety situations.",
			Icon:        "💻",
			Type:        TypeRedFlag,
			Difficulty:  "intermediate",
			MaxScore:    80,
			RedFlags: []RedFlag{
				{ID: "os1", Text: "Someone you met online insists on meeting at an isolated location", IsRedFlag: true, Explanation: "Always meet in public, well-lit places. Insistence on isolation is a major warning sign."},
				{ID: "os2", Text: "A stranger asks for your home address or workplace details", IsRedFlag: true, Explanation: "Never share personal location details with people you don't know well. This information can be misused."},
				{ID: "os3", Text: "You use strong, unique passwords for each account", IsRedFlag: false, Explanation: "Using unique passwords is excellent digital hygiene and protects your accounts."},
				{ID: "os4", Text: "Someone threatens to share your private photos", IsRedFlag: true, Explanation: "This is a criminal offense under IPC 354C and IT Act Section 67. Report to cybercrime.gov.in immediately."},
				{ID: "os5", Text: "A social media account with no photos follows you and sends DMs", IsRedFlag: true, Explanation: "Anonymous accounts sending unsolicited messages are often used for harassment or catfishing."},
				{ID: "os6", Text: "You enable two-factor authentication on your accounts", IsRedFlag: false, Explanation: "Two-factor authentication significantly improves your account security."},
				{ID: "os7", Text: "An \"employer\" asks for personal photos during an online job interview", IsRedFlag: true, Explanation: "Legitimate employers never ask for personal photos. This is likely a scam or exploitation attempt."},
				{ID: "os8", Text: "You review privacy settings on social media regularly", IsRedFlag: false, Explanation: "Regularly reviewing privacy settings helps you control who sees your information."},
			},
		},
	}
}
