package simdrive

// HTTP status code constants.
const (
	StatusOK       = 200
	StatusCreated  = 201
	StatusConflict = 409
)

// Policy thresholds.
const (
	supportMotivationBelow = 0.45
	lowEnergyThreshold     = 60
	energyBundleUnits      = 100
	energyBundleCash       = 250.0
)
