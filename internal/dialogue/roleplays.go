package dialogue

// SeedRolePlays returns the built-in conversation practice role-plays.
// Each choice carries a four-dimension emotional-intelligence delta in
// [-10,10]; endings classify how the conversation landed.
func SeedRolePlays() []*Graph {
	return []*Graph{
		{
			ID:          "friend-in-trouble",
			Title:       "A Friend Reaches Out",
			Description: "Your college friend confides that she's being stalked by an ex. Navigate this sensitive conversation with empathy and helpful guidance.",
			Category:    "Supporting Others",
			Icon:        "💬",
			Difficulty:  "beginner",
			Kind:        KindRolePlay,
			Setting:     "College canteen in Delhi",
			NPCName:     "Meera",
			NPCEmoji:    "👩‍🎓",
			StartNodeID: "start",
			MaxScore:    120,
			MaxEI:       40,
			Nodes: map[string]*Node{
				"start": {
					ID:           "start",
					Speaker:      "npc",
					SpeakerName:  "Meera",
					SpeakerEmoji: "👩‍🎓",
					Narrative:    "\"Hey... can I talk to you about something? I don't know who else to tell. My ex, Vikram, keeps showing up outside my hostel. He messages me 50 times a day. I blocked him but he made new accounts...\"",
					Situation:    "Meera looks anxious, fidgeting with her dupatta. She seems scared but also embarrassed.",
					Choices: []Choice{
						{
							ID:         "listen-first",
							Text:       "\"I'm really glad you told me, Meera. That sounds incredibly stressful. Take your time, I'm here to listen.\"",
							Points:     30,
							Feedback:   "Meera's shoulders relax slightly. She takes a deep breath and continues sharing.",
							NPCEmotion: "relieved",
							NextNodeID: "opened-up",
							EI:         EIVector{Empathy: 8, Assertiveness: 2, Awareness: 5, Composure: 7},
						},
						{
							ID:         "jump-to-action",
							Text:       "\"Oh my god, you need to go to the police right now! Why haven't you filed a complaint yet?\"",
							Points:     10,
							Feedback:   "Meera flinches and looks down. \"I... I was afraid people would judge me for dating him in the first place...\"",
							NPCEmotion: "uncomfortable",
							NextNodeID: "defensive",
							EI:         EIVector{Empathy: -2, Assertiveness: 8, Awareness: 3, Composure: -3},
						},
						{
							ID:         "minimize",
							Text:       "\"Are you sure you're not overreacting? Maybe he just misses you. Boys can be like that.\"",
							Points:     0,
							Feedback:   "Meera's eyes fill with tears. \"I knew nobody would understand...\" She starts to close off.",
							NPCEmotion: "upset",
							NextNodeID: "closed-off",
							EI:         EIVector{Empathy: -8, Assertiveness: -2, Awareness: -5, Composure: 3},
						},
					},
				},
				"opened-up": {
					ID:           "opened-up",
					Speaker:      "npc",
					SpeakerName:  "Meera",
					SpeakerEmoji: "👩‍🎓",
					Narrative:    "\"He even followed me to my part-time job last week. The security guard noticed and asked him to leave, but he came back the next day. I feel like I can't go anywhere safely anymore.\"",
					Situation:    "Meera is opening up more, trusting you with details. She seems scared but also relieved to finally share.",
					Choices: []Choice{
						{
							ID:         "validate-inform",
							Text:       "\"What you're describing is stalking, Meera, and it's a crime under Section 354D. You're not overreacting at all. Would you like to know what options you have?\"",
							Points:     30,
							Feedback:   "\"It's... actually a crime? I didn't know there was a specific law for this. Yes, tell me more.\"",
							NPCEmotion: "relieved",
							NextNodeID: "informed-options",
							EI:         EIVector{Empathy: 7, Assertiveness: 6, Awareness: 9, Composure: 8},
						},
						{
							ID:         "offer-help",
							Text:       "\"That's really scary. You shouldn't have to deal with this alone. Can I walk with you to places for a while? And maybe we can figure out a safety plan together?\"",
							Points:     25,
							Feedback:   "\"You'd really do that? That means so much to me. But I think I need something more permanent...\"",
							NPCEmotion: "grateful",
							NextNodeID: "informed-options",
							EI:         EIVector{Empathy: 9, Assertiveness: 4, Awareness: 5, Composure: 6},
						},
						{
							ID:         "confront-him",
							Text:       "\"I'll talk to Vikram myself. He needs to know this isn't okay.\"",
							Points:     10,
							Feedback:   "\"No, please don't! That might make things worse. He can get really aggressive...\"",
							NPCEmotion: "uncomfortable",
							NextNodeID: "informed-options",
							EI:         EIVector{Empathy: 3, Assertiveness: 7, Awareness: -3, Composure: -2},
						},
					},
				},
				"defensive": {
					ID:           "defensive",
					Speaker:      "npc",
					SpeakerName:  "Meera",
					SpeakerEmoji: "👩‍🎓",
					Narrative:    "\"I'm scared of going to the police. What if they don't believe me? What if Vikram finds out and gets angrier? I just... I needed someone to understand.\"",
					Situation:    "Meera seems hesitant now. Your earlier reaction made her second-guess telling you.",
					Choices: []Choice{
						{
							ID:         "course-correct",
							Text:       "\"I'm sorry, Meera. I didn't mean to pressure you. Your feelings are completely valid. Let's talk about what YOU feel comfortable doing first.\"",
							Points:     25,
							Feedback:   "Meera looks up, some trust restored. \"Thank you. I think I just need to know my options...\"",
							NPCEmotion: "relieved",
							NextNodeID: "informed-options",
							EI:         EIVector{Empathy: 8, Assertiveness: 3, Awareness: 7, Composure: 6},
						},
						{
							ID:         "insist-police",
							Text:       "\"But seriously, the police is the only real solution. You have to file an FIR.\"",
							Points:     5,
							Feedback:   "\"Maybe... maybe I shouldn't have brought this up.\" Meera pulls back.",
							NPCEmotion: "upset",
							NextNodeID: "missed-ending",
							EI:         EIVector{Empathy: -3, Assertiveness: 8, Awareness: 2, Composure: -1},
						},
					},
				},
				"closed-off": {
					ID:           "closed-off",
					Speaker:      "npc",
					SpeakerName:  "Meera",
					SpeakerEmoji: "👩‍🎓",
					Narrative:    "\"Forget I said anything. It's not a big deal.\" Meera starts gathering her things to leave.",
					Situation:    "Meera is shutting down. This is a crucial moment to reconnect.",
					Choices: []Choice{
						{
							ID:         "apologize-reconnect",
							Text:       "\"Wait, Meera. I'm sorry, that was dismissive of me. What you're going through IS a big deal, and I want to help. Please, sit down.\"",
							Points:     20,
							Feedback:   "Meera pauses, then slowly sits back down. \"Do you really mean that?\"",
							NPCEmotion: "relieved",
							NextNodeID: "informed-options",
							EI:         EIVector{Empathy: 9, Assertiveness: 5, Awareness: 8, Composure: 7},
						},
						{
							ID:         "let-go",
							Text:       "\"Okay, if you say so. Let me know if you need anything.\"",
							Points:     0,
							Feedback:   "Meera walks away. She doesn't bring it up again and distances herself from you.",
							NPCEmotion: "upset",
							NextNodeID: "missed-ending",
							EI:         EIVector{Empathy: -5, Assertiveness: -3, Awareness: -6, Composure: 2},
						},
					},
				},
				"informed-options": {
					ID:        "informed-options",
					Speaker:   "narrator",
					Narrative: "You explain to Meera that under IPC Section 354D, stalking is punishable with up to 3 years imprisonment. She can file a complaint at any police station, and they cannot refuse to register it. You also share the Women Helpline number 181.",
					Situation: "Meera is listening carefully, taking it all in.",
					Choices: []Choice{
						{
							ID:         "empower-choice",
							Text:       "\"These are your options, Meera. Whatever you decide, I'll support you. You don't have to do anything right now, but know that you have rights and people who care.\"",
							Points:     30,
							Feedback:   "\"Thank you. I think... I want to call that helpline first. Will you be there when I do?\"",
							NPCEmotion: "grateful",
							NextNodeID: "empowered-ending",
							EI:         EIVector{Empathy: 9, Assertiveness: 5, Awareness: 8, Composure: 9},
						},
						{
							ID:         "plan-together",
							Text:       "\"Let's make a safety plan together. We can document everything, tell the hostel warden, and you can decide about filing a complaint when you're ready.\"",
							Points:     25,
							Feedback:   "\"A plan... yes, that makes me feel more in control. Let's do that.\"",
							NPCEmotion: "supportive",
							NextNodeID: "supportive-ending",
							EI:         EIVector{Empathy: 7, Assertiveness: 7, Awareness: 8, Composure: 7},
						},
					},
				},
				"empowered-ending": {
					ID:           "empowered-ending",
					Speaker:      "narrator",
					Narrative:    "Meera calls the Women Helpline (181) with you beside her. The counselor is supportive and guides her through her options. Meera decides to file a complaint. Over the next weeks, with support from the hostel administration and police, the stalking stops. Meera tells you: \"You were the first person who made me feel like I wasn't crazy for being scared.\"",
					Situation:    "Resolution: Meera gets help and feels empowered.",
					IsEnding:     true,
					EndingType:   EndingEmpowered,
					Reflection:   "You showed exceptional emotional intelligence: listening without judgment, validating feelings, sharing knowledge, and empowering Meera to make her own choices. This is the gold standard for supporting someone in crisis.",
					LawReference: "IPC Section 354D: Stalking is punishable with up to 3 years imprisonment on first conviction. Cyberstalking falls under IT Act Section 67. An FIR cannot be refused by police (Section 154 CrPC). Women Helpline: 181.",
				},
				"supportive-ending": {
					ID:           "supportive-ending",
					Speaker:      "narrator",
					Narrative:    "You and Meera create a detailed safety plan. She documents all incidents, the hostel warden is informed, and security is tightened. Meera gradually feels more in control. She later decides to file a formal complaint with confidence.",
					Situation:    "Resolution: Meera has a support system and a plan.",
					IsEnding:     true,
					EndingType:   EndingSupportive,
					Reflection:   "You provided strong practical support and helped Meera feel in control. Creating a safety plan together is an excellent way to support someone facing harassment.",
					LawReference: "Under Section 354D IPC, stalking is a cognizable offense. The victim can also seek a protection order under DV Act, 2005 if applicable. File cybercrime complaints at cybercrime.gov.in.",
				},
				"missed-ending": {
					ID:           "missed-ending",
					Speaker:      "narrator",
					Narrative:    "Meera doesn't reach out again. Weeks later, you hear from another friend that the situation escalated before Meera finally got help from a counselor. She's safe now, but the delay in support made things harder for her.",
					Situation:    "Resolution: Meera eventually gets help, but the conversation could have gone better.",
					IsEnding:     true,
					EndingType:   EndingMissed,
					Reflection:   "This was a learning moment. When someone confides in you, the first response matters enormously. Listening without judgment, validating their experience, and offering informed options can make a life-changing difference.",
					LawReference: "Remember: Stalking is a crime (IPC 354D). If someone confides in you, believe them first. Share helpline numbers: 181 (Women Helpline), 1091 (Women in Distress), 112 (Emergency).",
				},
			},
		},
		{
			ID:          "workplace-confrontation",
			Title:       "The Office Confrontation",
			Description: "A male colleague makes an inappropriate joke in a meeting. Navigate the situation with emotional intelligence.",
			Category:    "Workplace Communication",
			Icon:        "🏢",
			Difficulty:  "intermediate",
			Kind:        KindRolePlay,
			Setting:     "Conference room at an IT company in Pune",
			NPCName:     "Colleague Group",
			NPCEmoji:    "👥",
			StartNodeID: "start",
			MaxScore:    120,
			MaxEI:       40,
			Nodes: map[string]*Node{
				"start": {
					ID:        "start",
					Speaker:   "narrator",
					Narrative: "During a team meeting, your colleague Rohit makes a \"joke\" about women not understanding technical architecture. A few people laugh uncomfortably. Your manager stays silent. You notice Priya, a junior developer, looking visibly hurt.",
					Situation: "Team meeting with 8 people. Rohit is a senior developer. Your manager Sunita is present but didn't react.",
					Choices: []Choice{
						{
							ID:         "address-calmly",
							Text:       "\"Rohit, I don't think that's accurate or appropriate. Women contribute significantly to tech architecture, including people in this room.\"",
							Points:     30,
							Feedback:   "The room goes quiet. Rohit looks surprised. \"I was just joking, don't be so sensitive.\" Priya looks at you with gratitude.",
							NPCEmotion: "neutral",
							NextNodeID: "pushback",
							EI:         EIVector{Empathy: 5, Assertiveness: 9, Awareness: 8, Composure: 8},
						},
						{
							ID:         "check-priya",
							Text:       "You make eye contact with Priya and give her a reassuring look. After the meeting, you approach her privately.",
							Points:     25,
							Feedback:   "Priya looks relieved that someone noticed. After the meeting, she says: \"Thank you for checking on me. That comment really bothered me.\"",
							NPCEmotion: "grateful",
							NextNodeID: "private-support",
							EI:         EIVector{Empathy: 9, Assertiveness: 3, Awareness: 7, Composure: 7},
						},
						{
							ID:         "laugh-along",
							Text:       "Laugh politely to avoid confrontation and continue with the meeting agenda.",
							Points:     0,
							Feedback:   "The meeting continues. Rohit feels emboldened. Priya disengages from the discussion entirely.",
							NPCEmotion: "upset",
							NextNodeID: "missed-workplace",
							EI:         EIVector{Empathy: -5, Assertiveness: -7, Awareness: -3, Composure: 5},
						},
					},
				},
				"pushback": {
					ID:           "pushback",
					Speaker:      "npc",
					SpeakerName:  "Rohit",
					SpeakerEmoji: "🧑‍💻",
					Narrative:    "\"Come on, it was just a joke. Why does everything have to be so politically correct these days? I didn't mean anything by it.\"",
					Situation:    "Rohit is defensive. Others are watching to see how this plays out. Your manager is still silent.",
					Choices: []Choice{
						{
							ID:         "firm-professional",
							Text:       "\"Intent doesn't erase impact, Rohit. Under POSH guidelines, such comments can constitute harassment. Let's maintain a professional environment for everyone.\"",
							Points:     30,
							Feedback:   "Rohit goes quiet. Sunita (manager) finally speaks: \"That's a fair point. Let's be mindful of our language in professional settings.\"",
							NPCEmotion: "neutral",
							NextNodeID: "empowered-workplace",
							EI:         EIVector{Empathy: 4, Assertiveness: 9, Awareness: 9, Composure: 9},
						},
						{
							ID:         "redirect-constructive",
							Text:       "\"I'm sure you didn't mean harm. But let's focus on making sure everyone on the team feels valued. Priya, would you like to share your thoughts on the architecture?\"",
							Points:     25,
							Feedback:   "The tension eases. Priya, surprised but pleased, shares her ideas confidently. The meeting gets back on track.",
							NPCEmotion: "supportive",
							NextNodeID: "supportive-workplace",
							EI:         EIVector{Empathy: 7, Assertiveness: 6, Awareness: 8, Composure: 9},
						},
					},
				},
				"private-support": {
					ID:           "private-support",
					Speaker:      "npc",
					SpeakerName:  "Priya",
					SpeakerEmoji: "👩‍💻",
					Narrative:    "\"It's not the first time he's said something like that. Last week he told me I got the project because of 'diversity hiring.' I don't know if I should report it...\"",
					Situation:    "A quiet corner after the meeting. Priya is confiding in you.",
					Choices: []Choice{
						{
							ID:         "inform-empower",
							Text:       "\"That's definitely not okay, Priya. The POSH Act covers exactly this kind of behavior. You have the right to file with the ICC. Would you like me to tell you more about the process?\"",
							Points:     30,
							Feedback:   "\"There's actually a law for this? Yes, please tell me more. I want to know my options.\"",
							NPCEmotion: "relieved",
							NextNodeID: "empowered-workplace",
							EI:         EIVector{Empathy: 7, Assertiveness: 7, Awareness: 9, Composure: 8},
						},
						{
							ID:         "document-together",
							Text:       "\"Let's start by documenting every incident: dates, what was said, who was present. That way, if you decide to report, you have strong evidence.\"",
							Points:     25,
							Feedback:   "\"That's smart. I've been keeping some messages but I didn't think to document the verbal stuff. Will you help me?\"",
							NPCEmotion: "grateful",
							NextNodeID: "supportive-workplace",
							EI:         EIVector{Empathy: 6, Assertiveness: 6, Awareness: 8, Composure: 8},
						},
					},
				},
				"empowered-workplace": {
					ID:           "empowered-workplace",
					Speaker:      "narrator",
					Narrative:    "Your intervention set a new tone. The team becomes more conscious of inclusive language. Priya gains confidence and later presents her architecture design, which is well-received. The manager schedules a POSH awareness session for the team.",
					Situation:    "Positive workplace change initiated by your actions.",
					IsEnding:     true,
					EndingType:   EndingEmpowered,
					Reflection:   "You demonstrated excellent emotional intelligence, balancing assertiveness with professionalism, citing legal awareness, and creating space for others. Your actions improved the entire team dynamic.",
					LawReference: "Under POSH Act 2013, sexual harassment includes sexually colored remarks, unwelcome comments, and hostile work environment. Every organization with 10+ employees must have an ICC. Complaints must be resolved within 90 days.",
				},
				"supportive-workplace": {
					ID:           "supportive-workplace",
					Speaker:      "narrator",
					Narrative:    "While the immediate situation wasn't addressed publicly, your private support empowers Priya. She documents the incidents and later approaches the ICC with a well-documented case. She credits your guidance as the turning point.",
					Situation:    "Priya takes action with your support.",
					IsEnding:     true,
					EndingType:   EndingSupportive,
					Reflection:   "You provided valuable support behind the scenes. While addressing harassment publicly is ideal, supporting someone privately is also powerful. Your knowledge of POSH Act helped Priya take informed action.",
					LawReference: "POSH Act makes it mandatory for employers to provide a safe working environment. Retaliation against a complainant is prohibited. The ICC must include an external member.",
				},
				"missed-workplace": {
					ID:           "missed-workplace",
					Speaker:      "narrator",
					Narrative:    "The meeting continues as if nothing happened. Rohit's comments become more frequent. Priya eventually requests a team transfer, and the toxic dynamic persists. Months later, Priya mentions she wishes someone had spoken up.",
					Situation:    "The silence was interpreted as acceptance.",
					IsEnding:     true,
					EndingType:   EndingMissed,
					Reflection:   "Staying silent in the face of inappropriate behavior can unintentionally normalize it. Being an upstander, someone who speaks up, creates safer spaces for everyone. It takes practice, and that's what this mode is for.",
					LawReference: "Under POSH Act, bystanders can support complaints. Everyone has a role in maintaining a harassment-free workplace. If you witness harassment, you can support the affected person in documenting and reporting.",
				},
			},
		},
		{
			ID:          "online-pressure",
			Title:       "Digital Boundaries",
			Description: "Someone you met online is pressuring you to share personal photos. Practice setting digital boundaries with emotional intelligence.",
			Category:    "Digital Safety",
			Icon:        "📱",
			Difficulty:  "advanced",
			Kind:        KindRolePlay,
			Setting:     "Online messaging conversation",
			NPCName:     "Arjun",
			NPCEmoji:    "🧑",
			StartNodeID: "start",
			MaxScore:    120,
			MaxEI:       40,
			Nodes: map[string]*Node{
				"start": {
					ID:           "start",
					Speaker:      "npc",
					SpeakerName:  "Arjun",
					SpeakerEmoji: "🧑",
					Narrative:    "\"Hey, we've been talking for 2 months now 😊 I really feel a connection. I sent you my photos, would you send me some too? Just between us, I promise.\"",
					Situation:    "You met Arjun on a social media platform 2 months ago. He's been friendly and attentive. This is the first time he's asked for personal photos.",
					Choices: []Choice{
						{
							ID:         "firm-boundary",
							Text:       "\"I enjoy our conversations, but I'm not comfortable sharing personal photos online. That's a boundary I keep for my own safety.\"",
							Points:     30,
							Feedback:   "\"Come on, don't you trust me? I thought we had something special. I wouldn't ask if I didn't care about you.\"",
							NPCEmotion: "uncomfortable",
							NextNodeID: "guilt-trip",
							EI:         EIVector{Empathy: 5, Assertiveness: 9, Awareness: 8, Composure: 9},
						},
						{
							ID:         "deflect",
							Text:       "\"Haha, maybe later! Let's talk about something else 😅\"",
							Points:     10,
							Feedback:   "\"Later? Like when? I feel like you don't trust me. I shared mine first to show I trust you...\"",
							NPCEmotion: "uncomfortable",
							NextNodeID: "guilt-trip",
							EI:         EIVector{Empathy: 3, Assertiveness: -2, Awareness: 2, Composure: 4},
						},
						{
							ID:         "ask-why",
							Text:       "\"Why is sharing photos so important to you? We can know each other through conversations.\"",
							Points:     20,
							Feedback:   "\"I just want to feel closer to you. Everyone does this, it's normal. Don't you want to take this forward?\"",
							NPCEmotion: "neutral",
							NextNodeID: "guilt-trip",
							EI:         EIVector{Empathy: 6, Assertiveness: 6, Awareness: 7, Composure: 7},
						},
					},
				},
				"guilt-trip": {
					ID:           "guilt-trip",
					Speaker:      "npc",
					SpeakerName:  "Arjun",
					SpeakerEmoji: "🧑",
					Narrative:    "\"If you really cared about me, you'd trust me with this. I've told you so many personal things. Are you saying all of that meant nothing? Maybe this isn't going to work if you can't even do this one thing...\"",
					Situation:    "Classic emotional manipulation: guilt-tripping, conditional affection, and ultimatum. Red flags are present.",
					Choices: []Choice{
						{
							ID:         "recognize-manipulation",
							Text:       "\"Arjun, someone who truly cares wouldn't pressure me or make me feel guilty for having boundaries. That's a red flag for me. I need to step back from this conversation.\"",
							Points:     30,
							Feedback:   "\"Wow, you're really going to throw this away over nothing? Fine, your loss.\" He becomes hostile, confirming the red flag.",
							NPCEmotion: "upset",
							NextNodeID: "empowered-digital",
							EI:         EIVector{Empathy: 4, Assertiveness: 10, Awareness: 10, Composure: 9},
						},
						{
							ID:         "seek-advice",
							Text:       "\"I need to think about this. Let me talk to a friend first.\" You screenshot the conversation and share it with a trusted friend.",
							Points:     25,
							Feedback:   "\"Why do you need to involve others? This is between us. Don't share our private conversations.\"",
							NPCEmotion: "uncomfortable",
							NextNodeID: "supported-digital",
							EI:         EIVector{Empathy: 5, Assertiveness: 5, Awareness: 8, Composure: 7},
						},
						{
							ID:         "give-in-partially",
							Text:       "\"Okay, maybe just one normal photo... just my face, nothing else.\"",
							Points:     5,
							Feedback:   "\"See, that wasn't so hard! Now how about a few more? Maybe something a bit more personal?\"",
							NPCEmotion: "neutral",
							NextNodeID: "escalation-digital",
							EI:         EIVector{Empathy: 2, Assertiveness: -5, Awareness: -3, Composure: -2},
						},
					},
				},
				"escalation-digital": {
					ID:        "escalation-digital",
					Speaker:   "narrator",
					Narrative: "The requests escalate. Once a small boundary is crossed, the pressure increases. This is a common pattern in online grooming and image-based abuse.",
					Situation: "Critical learning moment about escalation patterns.",
					Choices: []Choice{
						{
							ID:         "stop-now",
							Text:       "\"I'm not comfortable with this anymore. I shouldn't have sent that photo. I'm going to block you now.\"",
							Points:     20,
							Feedback:   "\"If you block me, I'll share what you already sent. Think carefully.\"",
							NPCEmotion: "upset",
							NextNodeID: "threat-response",
							EI:         EIVector{Empathy: 3, Assertiveness: 8, Awareness: 7, Composure: 6},
						},
						{
							ID:         "report-immediately",
							Text:       "Screenshot everything, block him, and report the profile. Then reach out to cybercrime.gov.in.",
							Points:     25,
							Feedback:   "Arjun is blocked and reported. His threatening behavior is now documented.",
							NPCEmotion: "neutral",
							NextNodeID: "supported-digital",
							EI:         EIVector{Empathy: 3, Assertiveness: 9, Awareness: 9, Composure: 8},
						},
					},
				},
				"threat-response": {
					ID:        "threat-response",
					Speaker:   "narrator",
					Narrative: "Threatening to share someone's images is a criminal offense under IT Act Section 67 and IPC Section 354C (voyeurism). You have legal options.",
					Situation: "Important legal knowledge about image-based abuse.",
					Choices: []Choice{
						{
							ID:         "take-action",
							Text:       "Screenshot the threats, block him, report to cybercrime.gov.in, and inform a trusted adult.",
							Points:     30,
							Feedback:   "You take decisive action. The threats are documented as evidence for a potential cybercrime complaint.",
							NPCEmotion: "neutral",
							NextNodeID: "supported-digital",
							EI:         EIVector{Empathy: 3, Assertiveness: 9, Awareness: 10, Composure: 8},
						},
					},
				},
				"empowered-digital": {
					ID:           "empowered-digital",
					Speaker:      "narrator",
					Narrative:    "You block Arjun and report his profile. You recognize the manipulation pattern: love-bombing, building trust, testing boundaries, guilt-tripping, threatening. This awareness will protect you in future interactions.",
					Situation:    "You identified and shut down a manipulation attempt.",
					IsEnding:     true,
					EndingType:   EndingEmpowered,
					Reflection:   "Outstanding emotional intelligence! You recognized guilt-tripping and manipulation, held your boundary firmly, and prioritized your safety. You understand that genuine connection never requires sacrificing your boundaries.",
					LawReference: "IT Act Section 67: Publishing obscene material is punishable with up to 5 years. IPC 354C: Voyeurism is punishable with up to 3 years. Non-consensual sharing of intimate images is a cybercrime. Report at cybercrime.gov.in or call 1930 (Cyber Crime Helpline).",
				},
				"supported-digital": {
					ID:           "supported-digital",
					Speaker:      "narrator",
					Narrative:    "With support from your friend and proper documentation, you handle the situation effectively. The screenshots serve as evidence. You learn about cybercrime reporting and feel more confident about setting digital boundaries.",
					Situation:    "Resolved with support and documentation.",
					IsEnding:     true,
					EndingType:   EndingSupportive,
					Reflection:   "You sought help and documented evidence, both crucial steps. Remember: sharing screenshots with trusted people is NOT a betrayal of privacy when someone is manipulating you. Your safety always comes first.",
					LawReference: "File cybercrime complaints at cybercrime.gov.in or call 1930. Under IT Act, sharing intimate images without consent is punishable. The Cyber Crime Helpline (1930) operates 24/7.",
				},
			},
		},
	}
}
