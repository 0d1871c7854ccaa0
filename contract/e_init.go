package main

// initImpl sets up the contract exactly once. The deployer becomes the
// owner allowed to tune the outbound gas budget later.
func initImpl(chain SDKInterface) *string {
	require(chain.StateGetObject(initFlagKey) == nil, errAlreadyInitialized, chain)

	sender := chain.GetEnv().Sender.Address
	chain.StateSetObject(initFlagKey, "1")
	chain.StateSetObject(ownerKey, sender.String())

	chain.Log("escrow initialized by " + sender.String())
	return nil
}
