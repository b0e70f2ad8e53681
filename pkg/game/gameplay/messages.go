package gameplay

// Catalogue keys for the messages the controller shows
const (
	MsgCodeEntered    = "MSG_CODE_ENTERED"
	MsgRopeDescends   = "MSG_ROPE_DESCENDS"
	MsgKeyPickedUp    = "MSG_KEY_PICKED_UP"
	MsgChestBlocks    = "MSG_CHEST_BLOCKS"
	MsgNeedKey        = "MSG_NEED_KEY"
	MsgDoorOpened     = "MSG_DOOR_OPENED"
	MsgEnteredVault   = "MSG_ENTERED_VAULT"
	MsgReturnedCellar = "MSG_RETURNED_CELLAR"
	MsgClimbedRope    = "MSG_CLIMBED_ROPE"
	MsgRopeTooHigh    = "MSG_ROPE_TOO_HIGH"
	MsgShardPickedUp  = "MSG_SHARD_PICKED_UP"
	MsgShardDropped   = "MSG_SHARD_DROPPED"
	MsgKeyDropped     = "MSG_KEY_DROPPED"
	MsgItemDropped    = "MSG_ITEM_DROPPED"
)

// MessageKeys lists every catalogue key the controller can emit
func MessageKeys() []string {
	return []string{
		MsgCodeEntered, MsgRopeDescends, MsgKeyPickedUp, MsgChestBlocks, MsgNeedKey,
		MsgDoorOpened, MsgEnteredVault, MsgReturnedCellar, MsgClimbedRope, MsgRopeTooHigh,
		MsgShardPickedUp, MsgShardDropped, MsgKeyDropped, MsgItemDropped,
	}
}
