package dialogue

// SeedScenarios returns the built-in safety scenarios. Risk indicators
// track the situational danger of each beat; points reward early,
// assertive action over passive waiting.
func SeedScenarios() []*Graph {
	return []*Graph{
		{
			ID:          "late-night-cab",
			Title:       "The Late Night Cab",
			Description: "Your cab takes a turn you don't recognize on the way home from work.",
			Category:    "travel",
			Icon:        "🚕",
			Difficulty:  "beginner",
			Kind:        KindScenario,
			StartNodeID: "pickup",
			MaxScore:    30,
			Nodes: map[string]*Node{
				"pickup": {
					ID:            "pickup",
					Narrative:     "It's 11:30 PM. You finished a late shift and booked a cab home. Ten minutes in, the driver turns off your usual route without saying anything.",
					Situation:     "Alone in a cab, unfamiliar road",
					RiskIndicator: 40,
					Choices: []Choice{
						{
							ID:              "share-trip",
							Text:            "Share your live trip with a family member and mention it out loud",
							Points:          15,
							Feedback:        "You tap Share Trip and say \"Maa, I've shared my ride, I'll be home by 12.\" The driver glances at the mirror and slows down.",
							NextNodeID:      "shared",
							RiskLevel:       "low",
							ConfidenceDelta: 5,
						},
						{
							ID:              "ask-driver",
							Text:            "Calmly ask the driver why he changed the route",
							Points:          10,
							Feedback:        "\"Bhaiya, this isn't the route on the app.\" He says there's construction ahead and this way is faster.",
							NextNodeID:      "asked",
							RiskLevel:       "medium",
							ConfidenceDelta: 3,
						},
						{
							ID:              "wait-quietly",
							Text:            "Say nothing and hope he knows a shortcut",
							Points:          0,
							Feedback:        "You stay quiet and watch the streets get darker and less familiar.",
							NextNodeID:      "off-route",
							RiskLevel:       "high",
							ConfidenceDelta: -2,
						},
					},
				},
				"shared": {
					ID:            "shared",
					Narrative:     "Your location is live with your family. The driver is back on a main road, but you're still a few kilometres from home.",
					Situation:     "Trip shared, driver aware you're connected",
					RiskIndicator: 20,
					Choices: []Choice{
						{
							ID:              "stay-on-call",
							Text:            "Stay on a call with your friend until you reach your gate",
							Points:          15,
							Feedback:        "You chat with your friend the whole way, reading out landmarks. The rest of the ride is uneventful.",
							NextNodeID:      "ending-empowered",
							RiskLevel:       "low",
							ConfidenceDelta: 5,
						},
						{
							ID:              "watch-map",
							Text:            "Keep watching the map quietly",
							Points:          5,
							Feedback:        "You track the blue dot. A minute later the driver takes another small lane and you sit up.",
							NextNodeID:      "asked",
							RiskLevel:       "medium",
							ConfidenceDelta: 0,
						},
					},
				},
				"asked": {
					ID:            "asked",
					Narrative:     "The driver insists the lane is a shortcut. The app shows you drifting further from the suggested route.",
					Situation:     "Route deviation continuing despite your question",
					RiskIndicator: 55,
					Choices: []Choice{
						{
							ID:              "insist-main-road",
							Text:            "Firmly tell him to return to the main road shown on the app",
							Points:          15,
							Feedback:        "\"Please take the app route only. My family is tracking this ride.\" He shrugs and turns back at the next signal.",
							NextNodeID:      "ending-empowered",
							RiskLevel:       "low",
							ConfidenceDelta: 4,
						},
						{
							ID:              "accept-shortcut",
							Text:            "Let it go, he probably knows the area better",
							Points:          0,
							Feedback:        "The lane narrows. There are no shops open and hardly any streetlights.",
							NextNodeID:      "off-route",
							RiskLevel:       "high",
							ConfidenceDelta: -2,
						},
					},
				},
				"off-route": {
					ID:            "off-route",
					Narrative:     "You don't recognize anything outside. The driver has ignored two turns that would take you back toward your area.",
					Situation:     "Far off route, isolated stretch",
					RiskIndicator: 75,
					Choices: []Choice{
						{
							ID:              "call-112",
							Text:            "Call 112, say your cab number and location clearly",
							Points:          15,
							Feedback:        "You speak loudly enough for the driver to hear: the cab number, the road name, your destination. He immediately turns back toward the highway.",
							NextNodeID:      "ending-safe",
							RiskLevel:       "low",
							ConfidenceDelta: 5,
						},
						{
							ID:              "demand-stop",
							Text:            "Demand he stop at the next busy spot and get out",
							Points:          10,
							Feedback:        "\"Stop at that petrol pump. Now.\" You get out where there are people and lights, and book another cab from there.",
							NextNodeID:      "ending-safe",
							RiskLevel:       "medium",
							ConfidenceDelta: 3,
						},
						{
							ID:              "freeze",
							Text:            "Freeze and keep hoping it works out",
							Points:          0,
							Feedback:        "You sit frozen as the cab moves deeper into streets you don't know.",
							NextNodeID:      "ending-risky",
							RiskLevel:       "high",
							ConfidenceDelta: -3,
						},
					},
				},
				"ending-empowered": {
					ID:            "ending-empowered",
					Narrative:     "You reach home safely. You stayed connected, spoke up early, and kept control of the ride the whole way.",
					RiskIndicator: 10,
					IsEnding:      true,
					EndingType:    EndingEmpowered,
					Reflection:    "Speaking up early and making yourself visibly connected changes a driver's behaviour before a situation escalates. Share Trip, a loud phone call, and naming the app route are all low-cost moves that work.",
					LawReference:  "Cab aggregators in India are required to provide in-app emergency buttons and trip sharing. 112 is the national emergency number; 1091 is the Women Helpline.",
				},
				"ending-safe": {
					ID:            "ending-safe",
					Narrative:     "You got out of the situation safely, but it escalated further than it needed to before you acted.",
					RiskIndicator: 25,
					IsEnding:      true,
					EndingType:    EndingSafe,
					Reflection:    "Calling 112 or exiting at a busy, lit spot are the right moves once a ride feels wrong. Acting at the first deviation, not the third, keeps the risk lower.",
					LawReference:  "112 connects police, fire and ambulance across India. Keep it on speed dial and know your cab's registration number.",
				},
				"ending-risky": {
					ID:            "ending-risky",
					Narrative:     "The cab finally stops near your area after a long detour. Nothing happened this time, but for twenty minutes nobody knew where you were.",
					RiskIndicator: 85,
					IsEnding:      true,
					EndingType:    EndingRisky,
					Reflection:    "Staying silent feels easier in the moment, but it hands all control to the other person. Trust the discomfort: a route deviation at night is always worth questioning out loud.",
					LawReference:  "You can report an unsafe ride to the aggregator and to 1091 (Women Helpline) even after it ends. Reports build the record that gets drivers removed.",
				},
			},
		},
		{
			ID:          "street-harassment",
			Title:       "The Bus Stop",
			Description: "A group near the bus stop starts passing comments as you wait for your bus.",
			Category:    "public-space",
			Icon:        "🚏",
			Difficulty:  "intermediate",
			Kind:        KindScenario,
			StartNodeID: "bus-stop",
			MaxScore:    30,
			Nodes: map[string]*Node{
				"bus-stop": {
					ID:            "bus-stop",
					Narrative:     "You're waiting for your evening bus. A group of three men nearby starts passing loud comments about you, laughing among themselves.",
					Situation:     "Public place, some people around, harassers testing your reaction",
					RiskIndicator: 45,
					Choices: []Choice{
						{
							ID:              "move-crowd",
							Text:            "Move closer to the tea stall where other commuters are standing",
							Points:          10,
							Feedback:        "You walk over to the stall and stand near an aunty and two students. The comments get quieter.",
							NextNodeID:      "near-crowd",
							RiskLevel:       "low",
							ConfidenceDelta: 3,
						},
						{
							ID:              "confront",
							Text:            "Turn, look directly at them and say loudly: \"What did you just say?\"",
							Points:          15,
							Feedback:        "Your voice carries. Heads turn at the stop. Two of them look away immediately; one mutters something.",
							NextNodeID:      "confronted",
							RiskLevel:       "medium",
							ConfidenceDelta: 5,
						},
						{
							ID:              "ignore-walk",
							Text:            "Ignore them and walk further down the road",
							Points:          5,
							Feedback:        "You walk on without reacting. Behind you, you hear footsteps leaving the group.",
							NextNodeID:      "followed",
							RiskLevel:       "high",
							ConfidenceDelta: 0,
						},
					},
				},
				"near-crowd": {
					ID:            "near-crowd",
					Narrative:     "Standing with the other commuters, you feel steadier. The group is still there, glancing over now and then.",
					Situation:     "Witnesses nearby, harassers deterred but present",
					RiskIndicator: 25,
					Choices: []Choice{
						{
							ID:              "call-1091",
							Text:            "Call 1091 and report the harassment while it's happening",
							Points:          15,
							Feedback:        "You describe the group and the stop. The aunty beside you nods and says she'll stay till your bus comes.",
							NextNodeID:      "ending-empowered",
							RiskLevel:       "low",
							ConfidenceDelta: 5,
						},
						{
							ID:              "tell-stall",
							Text:            "Tell the tea stall owner what's happening",
							Points:          10,
							Feedback:        "The owner, who sees this stop every day, calls out to the group by face. They drift away.",
							NextNodeID:      "ending-safe",
							RiskLevel:       "low",
							ConfidenceDelta: 2,
						},
					},
				},
				"confronted": {
					ID:            "confronted",
					Narrative:     "Two of them back off, but the third steps forward, arguing that you're \"overreacting\". People at the stop are watching now.",
					Situation:     "One harasser escalating verbally, public attention on you",
					RiskIndicator: 55,
					Choices: []Choice{
						{
							ID:              "name-law",
							Text:            "Take out your phone, start recording, and tell him this is an offence under Section 354A",
							Points:          15,
							Feedback:        "\"Sexual comments are a crime under 354A. This recording goes to the police.\" He goes pale and leaves with the others.",
							NextNodeID:      "ending-empowered",
							RiskLevel:       "low",
							ConfidenceDelta: 5,
						},
						{
							ID:              "step-to-crowd",
							Text:            "Say \"stay away from me\" and move to the crowd at the stall",
							Points:          5,
							Feedback:        "You hold eye contact for a second, then walk to the stall. He doesn't follow.",
							NextNodeID:      "near-crowd",
							RiskLevel:       "medium",
							ConfidenceDelta: 1,
						},
					},
				},
				"followed": {
					ID:            "followed",
					Narrative:     "One of them has left the group and is walking in your direction, keeping pace about ten metres behind.",
					Situation:     "Being followed, fewer people on this stretch",
					RiskIndicator: 70,
					Choices: []Choice{
						{
							ID:              "enter-shop",
							Text:            "Step into the medical store ahead and call a family member",
							Points:          10,
							Feedback:        "You tell the pharmacist someone is following you. He lets you wait inside; the man loiters, then gives up and leaves.",
							NextNodeID:      "ending-safe",
							RiskLevel:       "low",
							ConfidenceDelta: 3,
						},
						{
							ID:              "quiet-lane",
							Text:            "Speed up and cut through the quiet lane to get home faster",
							Points:          0,
							Feedback:        "The lane is empty. Your shortcut has taken you away from every open shop and streetlight.",
							NextNodeID:      "ending-risky",
							RiskLevel:       "high",
							ConfidenceDelta: -3,
						},
					},
				},
				"ending-empowered": {
					ID:            "ending-empowered",
					Narrative:     "The group is gone and your bus arrives. You handled it on your terms, and the people around you saw it happen.",
					RiskIndicator: 10,
					IsEnding:      true,
					EndingType:    EndingEmpowered,
					Reflection:    "Harassers rely on silence. A loud, direct response, a visible recording, or a live helpline call flips the attention onto them. Naming the law works because they know it applies.",
					LawReference:  "Section 354A IPC makes sexually coloured remarks and unwelcome advances punishable with imprisonment. 1091 is the dedicated Women Helpline; 112 works everywhere.",
				},
				"ending-safe": {
					ID:            "ending-safe",
					Narrative:     "You're safe, with people around you who now know what happened. The group has moved off.",
					RiskIndicator: 20,
					IsEnding:      true,
					EndingType:    EndingSafe,
					Reflection:    "Moving toward people and recruiting bystanders is one of the most reliable safety moves. A shopkeeper, a commuter, a pharmacist: witnesses change the maths for a harasser.",
					LawReference:  "You can file a complaint about street harassment at any police station or through the National Cyber Crime portal if it continues online. Bystanders can report too.",
				},
				"ending-risky": {
					ID:            "ending-risky",
					Narrative:     "You reach home breathless. He stopped following somewhere behind you, but for two streets you were alone with him and no one knew.",
					RiskIndicator: 85,
					IsEnding:      true,
					EndingType:    EndingRisky,
					Reflection:    "Ignoring harassment is sometimes the safest first move, but retreating into empty streets is not. When followed, head toward people and lights, never away from them.",
					LawReference:  "Section 354D IPC defines and punishes stalking, including following a woman despite clear disinterest. Report it even when nothing \"happened\"; the record matters.",
				},
			},
		},
	}
}
