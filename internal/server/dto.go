package server

import (
	"sort"

	"safepath/internal/dialogue"
	"safepath/internal/game"
	"safepath/internal/puzzle"
)

/* ------------------------- defense content ------------------------- */

type moveDTO struct {
	ID           string `json:"id"`
	Name         string `json:"name"`
	Icon         string `json:"icon"`
	Instruction  string `json:"instruction"`
	CameraAction string `json:"cameraAction"`
	Direction    string `json:"direction"`
	TapZone      string `json:"tapZone"`
	UnlockLevel  int    `json:"unlockLevel"`
	Points       int    `json:"points"`
	Category     string `json:"category"`
}

func toMoveDTO(m game.DefenseMove) moveDTO {
	return moveDTO{
		ID:           m.ID,
		Name:         m.Name,
		Icon:         m.Icon,
		Instruction:  m.Instruction,
		CameraAction: m.CameraAction,
		Direction:    string(m.Direction),
		TapZone:      string(m.TapZone),
		UnlockLevel:  m.UnlockLevel,
		Points:       m.Points,
		Category:     string(m.Category),
	}
}

type levelDTO struct {
	ID             int      `json:"id"`
	Name           string   `json:"name"`
	Description    string   `json:"description"`
	Icon           string   `json:"icon"`
	MoveIDs        []string `json:"moveIds"`
	TotalRounds    int      `json:"totalRounds"`
	TimePerMoveMS  int      `json:"timePerMove"`
	MinScoreToPass int      `json:"minScoreToPass"`
	ComboChains    bool     `json:"comboChains"`
	MaxCombo       int      `json:"maxCombo"`
}

func toLevelDTO(l game.GameLevel) levelDTO {
	return levelDTO{
		ID:             l.ID,
		Name:           l.Name,
		Description:    l.Description,
		Icon:           l.Icon,
		MoveIDs:        l.MoveIDs,
		TotalRounds:    l.TotalRounds,
		TimePerMoveMS:  l.TimePerMoveMS,
		MinScoreToPass: l.MinScoreToPass,
		ComboChains:    l.ComboChains,
		MaxCombo:       l.MaxCombo,
	}
}

type roundResultDTO struct {
	MoveID     string `json:"moveId"`
	MoveName   string `json:"moveName"`
	Reacted    bool   `json:"reacted"`
	ReactionMS int    `json:"reactionMs"`
	Correct    bool   `json:"correct"`
}

type summaryDTO struct {
	LevelID         int              `json:"levelId"`
	CorrectCount    int              `json:"correctCount"`
	TotalRounds     int              `json:"totalRounds"`
	ScorePercent    int              `json:"scorePercent"`
	Passed          bool             `json:"passed"`
	AvgReactionMS   int              `json:"avgReactionMs"`
	MaxCombo        int              `json:"maxCombo"`
	PointsEarned    int              `json:"pointsEarned"`
	ConfidenceDelta int              `json:"confidenceDelta"`
	Rounds          []roundResultDTO `json:"rounds"`
}

func toSummaryDTO(s game.Summary) summaryDTO {
	out := summaryDTO{
		LevelID:         s.LevelID,
		CorrectCount:    s.CorrectCount,
		TotalRounds:     s.TotalRounds,
		ScorePercent:    s.ScorePercent,
		Passed:          s.Passed,
		AvgReactionMS:   s.AvgReactionMS,
		MaxCombo:        s.MaxCombo,
		PointsEarned:    s.PointsEarned,
		ConfidenceDelta: s.ConfidenceDelta,
	}
	for _, r := range s.Rounds {
		out.Rounds = append(out.Rounds, roundResultDTO{
			MoveID:     r.Move.ID,
			MoveName:   r.Move.Name,
			Reacted:    r.Reacted,
			ReactionMS: int(r.ReactionTime.Milliseconds()),
			Correct:    r.Correct,
		})
	}
	return out
}

/* ------------------------- dialogue content ------------------------ */

type graphSummaryDTO struct {
	ID          string `json:"id"`
	Title       string `json:"title"`
	Description string `json:"description"`
	Category    string `json:"category"`
	Icon        string `json:"icon"`
	Difficulty  string `json:"difficulty"`
	MaxScore    int    `json:"maxScore"`
	MaxEI       int    `json:"maxEiScore,omitempty"`
	Setting     string `json:"setting,omitempty"`
	NPCName     string `json:"npcName,omitempty"`
	NPCEmoji    string `json:"npcEmoji,omitempty"`
}

func toGraphSummaryDTO(g *dialogue.Graph) graphSummaryDTO {
	return graphSummaryDTO{
		ID:          g.ID,
		Title:       g.Title,
		Description: g.Description,
		Category:    g.Category,
		Icon:        g.Icon,
		Difficulty:  g.Difficulty,
		MaxScore:    g.MaxScore,
		MaxEI:       g.MaxEI,
		Setting:     g.Setting,
		NPCName:     g.NPCName,
		NPCEmoji:    g.NPCEmoji,
	}
}

type choiceDTO struct {
	ID        string `json:"id"`
	Text      string `json:"text"`
	RiskLevel string `json:"riskLevel,omitempty"`
}

type nodeDTO struct {
	ID            string      `json:"id"`
	Narrative     string      `json:"narrative"`
	Situation     string      `json:"situation,omitempty"`
	Speaker       string      `json:"speaker,omitempty"`
	SpeakerName   string      `json:"speakerName,omitempty"`
	SpeakerEmoji  string      `json:"speakerEmoji,omitempty"`
	RiskIndicator int         `json:"riskIndicator"`
	Choices       []choiceDTO `json:"choices"`
	IsEnding      bool        `json:"isEnding"`
	EndingType    string      `json:"endingType,omitempty"`
	Reflection    string      `json:"reflection,omitempty"`
	LawReference  string      `json:"lawReference,omitempty"`
}

// toNodeDTO exposes a node without the per-choice scoring data; scores
// and feedback reach the client only after a choice is made.
func toNodeDTO(n *dialogue.Node) nodeDTO {
	out := nodeDTO{
		ID:            n.ID,
		Narrative:     n.Narrative,
		Situation:     n.Situation,
		Speaker:       n.Speaker,
		SpeakerName:   n.SpeakerName,
		SpeakerEmoji:  n.SpeakerEmoji,
		RiskIndicator: n.RiskIndicator,
		IsEnding:      n.IsEnding,
		EndingType:    string(n.EndingType),
		Reflection:    n.Reflection,
		LawReference:  n.LawReference,
	}
	for _, c := range n.Choices {
		out.Choices = append(out.Choices, choiceDTO{ID: c.ID, Text: c.Text, RiskLevel: c.RiskLevel})
	}
	return out
}

/* -------------------------- puzzle content ------------------------- */

type matchItemDTO struct {
	ID   string `json:"id"`
	Item string `json:"item"`
}

type flagItemDTO struct {
	ID   string `json:"id"`
	Text string `json:"text"`
}

type puzzleDTO struct {
	ID           string         `json:"id"`
	Title        string         `json:"title"`
	Description  string         `json:"description"`
	Icon         string         `json:"icon"`
	Type         string         `json:"type"`
	Difficulty   string         `json:"difficulty"`
	MaxScore     int            `json:"maxScore"`
	TimeLimitSec int            `json:"timeLimit,omitempty"`
	Items        []matchItemDTO `json:"items,omitempty"`
	Options      []string       `json:"options,omitempty"`
	Statements   []flagItemDTO  `json:"statements,omitempty"`
}

// toPuzzleDTO strips the answer key: matching puzzles expose items plus
// the pool of match texts, red-flag puzzles expose statements only.
func toPuzzleDTO(p *puzzle.Puzzle) puzzleDTO {
	out := puzzleDTO{
		ID:           p.ID,
		Title:        p.Title,
		Description:  p.Description,
		Icon:         p.Icon,
		Type:         string(p.Type),
		Difficulty:   p.Difficulty,
		MaxScore:     p.MaxScore,
		TimeLimitSec: p.TimeLimitSec,
	}
	for _, mp := range p.MatchPairs {
		out.Items = append(out.Items, matchItemDTO{ID: mp.ID, Item: mp.Item})
		out.Options = append(out.Options, mp.Match)
	}
	// Sorted so option order does not mirror the answer key.
	sort.Strings(out.Options)
	for _, rf := range p.RedFlags {
		out.Statements = append(out.Statements, flagItemDTO{ID: rf.ID, Text: rf.Text})
	}
	return out
}
