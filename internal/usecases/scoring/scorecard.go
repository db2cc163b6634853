package scoring

import "github.com/vfg2006/visibility-audit-api/internal/domain"

// ScoreCardFor normaliza todos os sub-scores de uma auditoria.
// O score geral é usado como veio do backend, apenas normalizado.
func ScoreCardFor(snapshot *domain.AuditSnapshot) domain.ScoreCard {
	if snapshot == nil {
		return domain.ScoreCard{}
	}

	card := domain.ScoreCard{
		AIVisibility:  Normalize(snapshot.AIVisibilityScore),
		MapsPresence:  Normalize(snapshot.MapsPresenceScore),
		Reviews:       Normalize(snapshot.ReviewScore),
		Photos:        Normalize(snapshot.PhotoScore),
		SEO:           Normalize(snapshot.SEOScore),
		CompetitorGap: Normalize(snapshot.CompetitorGapScore),
		Overall:       Normalize(snapshot.OverallScore),
		ChatGPT:       Normalize(snapshot.ChatGPTScore),
		Gemini:        Normalize(snapshot.GeminiScore),
		Perplexity:    Normalize(snapshot.PerplexityScore),
		Platforms:     make([]domain.PlatformScore, 0, len(snapshot.LLMIssueSets)),
	}

	for _, set := range snapshot.LLMIssueSets {
		card.Platforms = append(card.Platforms, platformScoreFor(set))
	}

	return card
}

func platformScoreFor(set domain.LLMIssueSet) domain.PlatformScore {
	bySeverity := make(map[domain.Severity]int)
	for _, issue := range set.Issues {
		bySeverity[issue.Severity]++
	}

	return domain.PlatformScore{
		Platform:         set.Platform,
		Score:            Normalize(set.Score),
		IssueCount:       len(set.Issues),
		IssuesBySeverity: bySeverity,
		Summary:          set.Summary,
	}
}
