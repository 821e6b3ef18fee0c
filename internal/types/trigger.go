package types

// TriggerType classifies what a pricing rule reacts to
type TriggerType string

const (
	TriggerRecharge    TriggerType = "recharge"
	TriggerBuySessions TriggerType = "buy_sessions"
	TriggerRenew       TriggerType = "renew"
	TriggerUpgrade     TriggerType = "upgrade"
	TriggerGeneric     TriggerType = "generic"
)
