package constant

const (
	ExchangeRoleUser  = "user"
	ExchangeRoleModel = "model"

	DefaultSummaryTitle = "Untitled Summary"

	// Audit actions recorded by the activity consumer.
	ActivityCreated = "created"
	ActivityRefined = "refined"
	ActivitySaved   = "saved"
	ActivityShared  = "shared"

	// TitleCharLimit bounds how much of the transcript is sent to the
	// title-generation call.
	TitleCharLimit = 1500

	TitlePromptTemplateV1 = `Analyze the following text and create a concise title for it, no more than 7 words. Text: "%s"`

	SummaryPromptTemplateV1 = `Instruction: "%s". Transcript: "%s"`

	RefinePromptTemplateV1 = `You are an expert editor. Refine the following summary based on the user's instruction. Only output the refined text, without any extra commentary.

Original Summary: "%s".

My Instruction: "%s"`
)
