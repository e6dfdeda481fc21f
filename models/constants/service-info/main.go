package serviceInfo

import "fmt"

type ServiceInfo string

var (
	SERVICE_NAME        ServiceInfo = "HISolver Haplotype Inference Service"
	SERVICE_WELCOME     ServiceInfo = "Welcome to the HISolver haplotype inference API!"
	SERVICE_DESCRIPTION ServiceInfo = "Infers a haplotype set explaining a genotype corpus using Clark's algorithm."

	SERVICE_ARTIFACT    ServiceInfo = "hisolver"
	SERVICE_VERSION     ServiceInfo = "0.1.0"
	SERVICE_TYPE_NO_VER ServiceInfo = ServiceInfo(fmt.Sprintf("com.lithium3141:%s", SERVICE_ARTIFACT))
	SERVICE_ID          ServiceInfo = SERVICE_TYPE_NO_VER
)
