package handler

import (
	"context"
	"net/http"

	"go.uber.org/zap"

	"nexchat/internal/enrich"
)

// EnrichHandler exposes each enrichment capability as one POST endpoint
// with the capability's fixed request/response schema. Failures come back
// as a single generic status; callers treat them uniformly.
type EnrichHandler struct {
	client enrich.Client
	logger *zap.Logger
}

func NewEnrichHandler(client enrich.Client, logger *zap.Logger) *EnrichHandler {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &EnrichHandler{client: client, logger: logger}
}

func (h *EnrichHandler) HandleSummarize(w http.ResponseWriter, r *http.Request) {
	var in enrich.SummarizeInput
	if !decodeBody(w, r, &in) {
		return
	}
	h.respond(w, enrich.CapabilitySummarize, func(ctx context.Context) (any, error) {
		return enrich.Summarize(ctx, h.client, in)
	}, r)
}

func (h *EnrichHandler) HandleTranslate(w http.ResponseWriter, r *http.Request) {
	var in enrich.TranslateInput
	if !decodeBody(w, r, &in) {
		return
	}
	h.respond(w, enrich.CapabilityTranslate, func(ctx context.Context) (any, error) {
		return enrich.Translate(ctx, h.client, in)
	}, r)
}

func (h *EnrichHandler) HandleSentiment(w http.ResponseWriter, r *http.Request) {
	var in enrich.SentimentInput
	if !decodeBody(w, r, &in) {
		return
	}
	h.respond(w, enrich.CapabilitySentiment, func(ctx context.Context) (any, error) {
		return enrich.AnalyzeSentiment(ctx, h.client, in)
	}, r)
}

func (h *EnrichHandler) HandleRewrite(w http.ResponseWriter, r *http.Request) {
	var in enrich.RewriteInput
	if !decodeBody(w, r, &in) {
		return
	}
	h.respond(w, enrich.CapabilityRewrite, func(ctx context.Context) (any, error) {
		return enrich.Rewrite(ctx, h.client, in)
	}, r)
}

func (h *EnrichHandler) HandleFactCheck(w http.ResponseWriter, r *http.Request) {
	var in enrich.FactCheckInput
	if !decodeBody(w, r, &in) {
		return
	}
	h.respond(w, enrich.CapabilityFactCheck, func(ctx context.Context) (any, error) {
		return enrich.FactCheck(ctx, h.client, in)
	}, r)
}

func (h *EnrichHandler) HandleSchedule(w http.ResponseWriter, r *http.Request) {
	var in enrich.ScheduleInput
	if !decodeBody(w, r, &in) {
		return
	}
	h.respond(w, enrich.CapabilitySchedule, func(ctx context.Context) (any, error) {
		return enrich.ExtractSchedule(ctx, h.client, in)
	}, r)
}

func (h *EnrichHandler) HandlePollAnalysis(w http.ResponseWriter, r *http.Request) {
	var in enrich.PollAnalysisInput
	if !decodeBody(w, r, &in) {
		return
	}
	h.respond(w, enrich.CapabilityPollAnalysis, func(ctx context.Context) (any, error) {
		return enrich.AnalyzePoll(ctx, h.client, in)
	}, r)
}

func (h *EnrichHandler) HandleAvatar(w http.ResponseWriter, r *http.Request) {
	var in enrich.AvatarInput
	if !decodeBody(w, r, &in) {
		return
	}
	h.respond(w, enrich.CapabilityAvatar, func(ctx context.Context) (any, error) {
		return enrich.BuildAvatar(ctx, h.client, in)
	}, r)
}

func (h *EnrichHandler) HandleAnimation(w http.ResponseWriter, r *http.Request) {
	var in enrich.AnimationInput
	if !decodeBody(w, r, &in) {
		return
	}
	h.respond(w, enrich.CapabilityAnimation, func(ctx context.Context) (any, error) {
		return enrich.ClassifyAnimation(ctx, h.client, in)
	}, r)
}

func (h *EnrichHandler) HandleAutoReply(w http.ResponseWriter, r *http.Request) {
	var in enrich.AutoReplyInput
	if !decodeBody(w, r, &in) {
		return
	}
	h.respond(w, enrich.CapabilityAutoReply, func(ctx context.Context) (any, error) {
		return enrich.GenerateAutoReply(ctx, h.client, in)
	}, r)
}

func (h *EnrichHandler) HandleMoodTheme(w http.ResponseWriter, r *http.Request) {
	var in enrich.MoodThemeInput
	if !decodeBody(w, r, &in) {
		return
	}
	h.respond(w, enrich.CapabilityMoodTheme, func(ctx context.Context) (any, error) {
		return enrich.ClassifyMoodTheme(ctx, h.client, in)
	}, r)
}

func (h *EnrichHandler) respond(w http.ResponseWriter, capability enrich.Capability, run func(ctx context.Context) (any, error), r *http.Request) {
	out, err := run(r.Context())
	if err != nil {
		h.logger.Warn("enrichment capability failed",
			zap.String("capability", string(capability)),
			zap.Error(err),
		)
		writeError(w, http.StatusBadGateway, "enrichment unavailable")
		return
	}
	writeJSON(w, http.StatusOK, out)
}
