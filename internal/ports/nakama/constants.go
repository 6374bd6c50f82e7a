package nakama

// RPC ids registered with Nakama.
const (
	RpcAdvise       = "phase10_advise"
	RpcSimulate     = "phase10_simulate"
	RpcReplay       = "phase10_replay"
	RpcProgress     = "phase10_progress"
	RpcAdvancePhase = "phase10_advance_phase"
)

// Storage location of per-user phase progress.
const (
	progressCollection = "phase10"
	progressKey        = "progress"
)

// Runtime environment keys (set under runtime.env in the Nakama config).
const (
	envTicketSecret = "phase10_ticket_secret"
	envConfigPath   = "phase10_config_path"
)

// gRPC status codes used with runtime.NewError.
const (
	codeInvalidArgument    = 3
	codeFailedPrecondition = 9
	codeAborted            = 10
	codeInternal           = 13
	codeUnauthenticated    = 16
)
